package assets

import (
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/generate"
)

// ItemTable lists the item types rolled for each item slot: 70% healing
// potions, 10% lightning scrolls, 20% confusion scrolls.
func ItemTable() []generate.ItemSpawnEntry {
	return []generate.ItemSpawnEntry{
		{Name: "healing potion", Glyph: GlyphPotion, Color: ColorViolet, Kind: component.ItemHeal, Weight: 70},
		{Name: "scroll of lightning bolt", Glyph: GlyphScroll, Color: ColorLightYellow, Kind: component.ItemLightning, Weight: 10},
		{Name: "scroll of confusion", Glyph: GlyphScroll, Color: ColorLightYellow, Kind: component.ItemConfuse, Weight: 20},
	}
}
