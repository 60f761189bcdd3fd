package render

import (
	"fmt"
	"strings"

	"tombs-roguelike/internal/msglog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	barWidth = 20
	msgX     = barWidth + 2
)

// HUD is what the status panel shows for one frame.
type HUD struct {
	HP, MaxHP int
	Messages  []msglog.Message
	Look      string // names under the mouse
}

// DrawHUD renders the look line, HP bar and message tail in the panel under
// the map, then shows the screen.
func (r *Renderer) DrawHUD(h HUD) {
	sw, sh := r.screen.Size()
	panelY := sh - PanelHeight

	r.clearRows(panelY, sh)
	r.drawText(1, panelY, runewidth.Truncate(h.Look, sw-2, ""), tcell.StyleDefault.Foreground(colorLook))
	r.drawBar(1, panelY+1, "HP", h.HP, h.MaxHP)

	lines := wrapMessages(h.Messages, sw-msgX-1, PanelHeight-1)
	for i, l := range lines {
		r.drawText(msgX, panelY+1+i, l.Text, tcell.StyleDefault.Foreground(l.Color))
	}

	r.screen.Show()
}

// drawBar renders a filled/empty bar with a centered "name: value/max" label.
func (r *Renderer) drawBar(x, y int, name string, value, maximum int) {
	filled := 0
	if maximum > 0 {
		filled = max(value, 0) * barWidth / maximum
	}
	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	start := (barWidth - runewidth.StringWidth(label)) / 2
	white := tcell.ColorWhite

	for i := 0; i < barWidth; i++ {
		bg := colorBarEmpty
		if i < filled {
			bg = colorBarFull
		}
		ch := ' '
		if j := i - start; j >= 0 && j < len(label) {
			ch = rune(label[j])
		}
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Background(bg).Foreground(white))
	}
}

// wrapMessages wraps messages to width columns and keeps the last
// height lines, each carrying its message's color.
func wrapMessages(msgs []msglog.Message, width, height int) []msglog.Message {
	if width <= 0 || height <= 0 {
		return nil
	}
	var lines []msglog.Message
	for _, m := range msgs {
		for _, l := range wrap(m.Text, width) {
			lines = append(lines, msglog.Message{Text: l, Color: m.Color})
		}
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lines
}

// wrap splits text into lines no wider than width columns.
func wrap(text string, width int) []string {
	return strings.Split(runewidth.Wrap(text, width), "\n")
}

func (r *Renderer) clearRows(from, to int) {
	w, _ := r.screen.Size()
	for y := from; y < to; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	drawText(r.screen, x, y, text, style)
}

// drawText writes text starting at (x, y), advancing by each rune's width.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
