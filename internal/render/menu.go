package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MaxMenuOptions is the number of letters available for menu options.
const MaxMenuOptions = 26

// Menu draws a centered modal with a wrapped header and lettered options,
// then blocks for one key. It returns the chosen option index; ok is false
// for any key that names no option. Panics with more than MaxMenuOptions
// options.
func Menu(screen tcell.Screen, header string, options []string, width int) (int, bool) {
	if len(options) > MaxMenuOptions {
		panic(fmt.Sprintf("render: menu cannot have more than %d options", MaxMenuOptions))
	}
	for {
		drawMenu(screen, header, options, width)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return optionIndex(ev, len(options))
		case nil:
			return 0, false
		}
	}
}

func drawMenu(screen tcell.Screen, header string, options []string, width int) {
	sw, sh := screen.Size()
	width = min(width, sw)
	var headerLines []string
	if header != "" {
		headerLines = wrap(header, width)
	}
	height := len(headerLines) + len(options)
	x0 := (sw - width) / 2
	y0 := max((sh-height)/2, 0)

	bg := tcell.StyleDefault.Background(colorMenuBG).Foreground(tcell.ColorWhite)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	y := y0
	for _, l := range headerLines {
		drawText(screen, x0, y, l, bg)
		y++
	}
	for i, opt := range options {
		drawText(screen, x0, y, fmt.Sprintf("(%c) %s", 'a'+i, opt), bg)
		y++
	}
	screen.Show()
}

// optionIndex maps a key press to an option among n; letters are case
// insensitive.
func optionIndex(ev *tcell.EventKey, n int) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	idx := int(r - 'a')
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}
