package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/config"
	"tombs-roguelike/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Game drives sessions from a tcell screen: it decodes input, steps the
// session and redraws after every event.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      *config.Config
	session  *Session
	rng      *rand.Rand // flavour only, never the dungeon

	mouseX, mouseY int
}

// New creates and returns a Game on the local terminal.
func New(cfg *config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates a Game on an already initialised screen, e.g. one
// backed by an SSH session.
func NewWithScreen(screen tcell.Screen, cfg *config.Config) *Game {
	screen.EnableMouse()
	screen.SetTitle(assets.Title)
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		mouseX:   -1,
		mouseY:   -1,
	}
}

// Session returns the run in progress, nil before Run starts.
func (g *Game) Session() *Session { return g.session }

// Run plays runs until the player quits, then releases the screen.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	for {
		g.session = NewSession(ctx, g.cfg)
		quit := g.play(ctx)
		stats := g.session.Finish()
		if quit || !g.showEndScreen(stats) {
			return
		}
	}
}

// play runs one session until the player dies (false) or asks to leave (true).
func (g *Game) play(ctx context.Context) bool {
	s := g.session
	for s.PlayerAlive() {
		if ctx.Err() != nil {
			return true
		}
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventMouse:
			g.mouseX, g.mouseY = ev.Position()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionInventory {
				g.runInventoryMenu()
				continue
			}
			if s.Step(ctx, action) == Exit {
				return true
			}
		}
	}
	g.draw()
	return false
}

func (g *Game) draw() {
	s := g.session
	pos := s.PlayerPosition()
	g.renderer.CenterOn(pos.X, pos.Y, s.Map)
	g.renderer.DrawFrame(s.World, s.Map, s.FOV())

	hp, maxHP := s.PlayerHP()
	look := ""
	if x, y, ok := g.renderer.ScreenToWorld(g.mouseX, g.mouseY); ok {
		look = s.NamesAt(x, y)
	}
	g.renderer.DrawHUD(render.HUD{
		HP:       hp,
		MaxHP:    maxHP,
		Messages: s.Log.Tail(render.PanelHeight * 2),
		Look:     look,
	})
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen(r RunLog) bool {
	uses := r.itemUseLines()
	epitaph := assets.Epitaphs[g.rng.Intn(len(assets.Epitaphs))]

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE TOMBS CLAIM YOU", gold)
		badge := "[DEFEAT]"
		g.putText(sw-len(badge)-1, y, badge, red)
		y += 2

		label(y, "Turns Survived:", fmt.Sprintf("%d", r.TurnsPlayed))
		y++
		label(y, "Enemies Slain:", fmt.Sprintf("%d", r.EnemiesKilled))
		y += 2

		label(y, "Items Picked Up:", fmt.Sprintf("%d", r.ItemsPickedUp))
		y++
		label(y, "Items Used:", fmt.Sprintf("%d", r.TotalItemsUsed()))
		y++
		for _, u := range uses {
			g.putText(4, y, fmt.Sprintf("%s ×%d", u.name, u.count), dim)
			y++
		}
		y++

		label(y, "Damage Dealt:", fmt.Sprintf("%d", r.DamageDealt))
		y++
		label(y, "Damage Taken:", fmt.Sprintf("%d", r.DamageTaken))
		y += 2

		g.putText(2, y, epitaph, gray)
		y += 2

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
