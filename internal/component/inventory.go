package component

import "tombs-roguelike/internal/ecs"

const CInventory ecs.ComponentType = 6

// DefaultInventoryCapacity gives one slot per menu letter a..z.
const DefaultInventoryCapacity = 26

// Inventory holds value copies of items the entity picked up.
type Inventory struct {
	Items    []InventoryItem
	Capacity int
}

// Full reports whether no further item fits.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

func (Inventory) Type() ecs.ComponentType { return CInventory }
