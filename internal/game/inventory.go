package game

import (
	"tombs-roguelike/internal/render"
)

const (
	inventoryWidth  = 50
	inventoryHeader = "Press the key next to an item to use it, or any other key to cancel.\n"
)

// runInventoryMenu lists the player's items and uses the one picked.
// Neither opening the menu nor using an item costs a turn.
func (g *Game) runInventoryMenu() {
	s := g.session
	items := s.Inventory()
	options := make([]string, 0, len(items))
	for _, it := range items {
		options = append(options, it.Name)
	}
	if len(options) == 0 {
		options = append(options, "Inventory is empty.")
	}

	g.draw()
	idx, ok := render.Menu(g.screen, inventoryHeader, options, inventoryWidth)
	if !ok || len(items) == 0 {
		return
	}
	s.UseItem(idx)
}
