package render

import (
	"tombs-roguelike/assets"
	"tombs-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// HUD colors.
var (
	colorBarFull  = tcell.NewRGBColor(255, 63, 63)
	colorBarEmpty = tcell.NewRGBColor(127, 0, 0)
	colorLook     = tcell.NewRGBColor(159, 159, 159)
	colorMenuBG   = tcell.NewRGBColor(20, 20, 20)
)

// tileBackground picks the background for a tile the player has seen.
// Lit tiles use the light palette; remembered tiles the dark one.
func tileBackground(t *gamemap.Tile, lit bool) tcell.Color {
	switch {
	case lit && t.IsWall():
		return assets.ColorLightWall
	case lit:
		return assets.ColorLightGround
	case t.IsWall():
		return assets.ColorDarkWall
	default:
		return assets.ColorDarkGround
	}
}
