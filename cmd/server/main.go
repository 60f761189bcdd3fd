// tombs-server hosts the game over SSH. Every connection plays its own
// independent run. Build:
//
//	go build -o tombs-server ./cmd/server
//
// Usage:
//
//	./tombs-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/config"
	"tombs-roguelike/internal/game"
	"tombs-roguelike/internal/logger"
	internalssh "tombs-roguelike/internal/ssh"
	"tombs-roguelike/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debugf(".env not loaded: %v", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("config: %v", err)
	}

	port := flag.Int("port", cfg.SSH.Port, "SSH server port")
	keyFile := flag.String("key", cfg.SSH.HostKeyPath, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	closer, err := logger.Init(logger.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		File:     cfg.LogFile,
		Fallback: os.Stderr,
	})
	if err != nil {
		logger.Log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.Warnf("telemetry setup failed, continuing without: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.Errorf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		logger.Log.Fatalf("host key: %v", err)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication: this is a private home server.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.WithField("port", *port).Infof("%s SSH server listening", assets.Title)
	logger.Log.Fatal(srv.ListenAndServe())
}

// allowedTerms are the TERM values passed through to terminfo. Anything
// else falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the whole run so the SSH session stays open.
func handleSession(s gossh.Session, cfg *config.Config) {
	entry := logger.Log.WithFields(logrus.Fields{
		"conn":   uuid.NewString(),
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		entry.Info("rejected connection without pty")
		return
	}

	term := sessionTerm(s.Environ())
	if !allowedTerms[term] {
		entry.WithField("term", term).Warn("unsupported TERM, using default")
		term = defaultTerm
	}

	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		entry.WithError(err).Error("terminal setup failed")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		entry.WithError(err).Error("screen init failed")
		return
	}

	entry.Info("player connected")
	g := game.NewWithScreen(screen, cfg)
	g.Run(s.Context())
	if sess := g.Session(); sess != nil {
		entry = entry.WithField("session", sess.ID.String())
	}
	entry.Info("player disconnected")
}

// sessionTerm returns the client's TERM, or "" if it sent none.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			return v
		}
	}
	return ""
}

const maxNameBytes = 16

// sanitizeName strips control characters from a user-supplied name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "tombs-roguelike server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600); err != nil {
			logger.Log.WithError(err).Warn("host key not persisted")
		}
	}
	return signer, nil
}
