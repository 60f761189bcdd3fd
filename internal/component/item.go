package component

import (
	"tombs-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// ItemKind selects the effect applied when an item is used.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemLightning
	ItemConfuse
)

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	case ItemLightning:
		return "lightning"
	case ItemConfuse:
		return "confuse"
	}
	return "unknown"
}

const CItem ecs.ComponentType = 7

// Item marks a floor entity that can be picked up.
type Item struct {
	Kind ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }

// InventoryItem is what remains of an item entity once it leaves the map.
// It is stored by value inside Inventory.
type InventoryItem struct {
	Name  string
	Glyph rune
	Color tcell.Color
	Kind  ItemKind
}
