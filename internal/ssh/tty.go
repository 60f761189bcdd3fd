// Package ssh adapts a gliderlabs SSH session into a tcell terminal so the
// game can be played over `ssh -t`.
package ssh

import (
	"sync"

	"tombs-roguelike/internal/logger"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session. Keyboard bytes come
// from the session's stdin and frames are written to its stdout.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	width    int
	height   int
	onResize func()
	watching sync.Once
}

// NewTty wraps s. pty carries the initial window size and winCh the
// window-change requests that follow.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		winCh:   winCh,
		width:   pty.Window.Width,
		height:  pty.Window.Height,
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH server.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.width, Height: t.height}, nil
}

// NotifyResize installs cb as the resize callback. The first call starts
// draining window-change requests until the session closes them.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	t.watching.Do(func() { go t.watch() })
}

func (t *Tty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.width, t.height = win.Width, win.Height
		cb := t.onResize
		t.mu.Unlock()

		logger.Log.WithField("user", t.session.User()).
			Debugf("window resized to %dx%d", win.Width, win.Height)
		if cb != nil {
			cb()
		}
	}
}

var _ tcell.Tty = (*Tty)(nil)
