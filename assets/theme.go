// Package assets holds the stock content of the dungeon: species, items,
// colors and flavour text.
package assets

import (
	"tombs-roguelike/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used on the map.
const (
	GlyphPlayer = '@'
	GlyphOrc    = 'o'
	GlyphTroll  = 'T'
	GlyphPotion = '!'
	GlyphScroll = '#'
	GlyphCorpse = '%'
)

// Palette.
var (
	ColorDesaturatedGreen = tcell.NewRGBColor(63, 127, 63)
	ColorDarkerGreen      = tcell.NewRGBColor(0, 127, 0)
	ColorViolet           = tcell.NewRGBColor(127, 0, 255)
	ColorLightViolet      = tcell.NewRGBColor(185, 115, 255)
	ColorLightYellow      = tcell.NewRGBColor(255, 255, 115)
	ColorLightBlue        = tcell.NewRGBColor(115, 115, 255)
	ColorLightGreen       = tcell.NewRGBColor(115, 255, 115)
	ColorGreen            = tcell.NewRGBColor(0, 255, 0)
	ColorRed              = tcell.NewRGBColor(255, 0, 0)
	ColorDarkRed          = tcell.NewRGBColor(191, 0, 0)
	ColorOrange           = tcell.NewRGBColor(255, 127, 0)
	ColorWhite            = tcell.NewRGBColor(255, 255, 255)

	ColorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	ColorLightWall   = tcell.NewRGBColor(130, 110, 50)
	ColorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	ColorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// PlayerDef holds the starting stats of the player character.
type PlayerDef struct {
	Name    string
	Glyph   rune
	Color   tcell.Color
	MaxHP   int
	Defense int
	Power   int
}

// Player is the one and only playable character.
var Player = PlayerDef{
	Name:    "player",
	Glyph:   GlyphPlayer,
	Color:   ColorWhite,
	MaxHP:   30,
	Defense: 2,
	Power:   5,
}

// MonsterTable lists the species rolled for each monster slot. Weights are
// relative: 80% orcs, 20% trolls.
func MonsterTable() []generate.MonsterSpawnEntry {
	return []generate.MonsterSpawnEntry{
		{Name: "orc", Glyph: GlyphOrc, Color: ColorDesaturatedGreen, MaxHP: 10, Defense: 0, Power: 3, Weight: 80},
		{Name: "troll", Glyph: GlyphTroll, Color: ColorDarkerGreen, MaxHP: 16, Defense: 1, Power: 4, Weight: 20},
	}
}
