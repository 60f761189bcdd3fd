package system

import (
	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// ItemAt returns the first item entity lying on (x, y), or ecs.NilEntity.
func ItemAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CItem, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// PickUp moves itemID into the picker's inventory. A full inventory leaves
// the item where it is. The item entity is destroyed on success; the order
// of all other entities is preserved. Reports whether the item was taken.
func PickUp(w *ecs.World, log *msglog.Log, pickerID, itemID ecs.EntityID) bool {
	ic := w.Get(itemID, component.CItem)
	if ic == nil {
		panic("system: entity is not an item")
	}
	c := w.Get(pickerID, component.CInventory)
	if c == nil {
		panic("system: picker has no inventory")
	}
	inv := c.(component.Inventory)
	name := NameOf(w, itemID)

	if inv.Full() {
		log.Addf(assets.ColorRed, "Your inventory is full. You cannot pick up %s.", name)
		return false
	}

	entry := component.InventoryItem{Name: name, Kind: ic.(component.Item).Kind}
	if rc := w.Get(itemID, component.CRenderable); rc != nil {
		r := rc.(component.Renderable)
		entry.Glyph, entry.Color = r.Glyph, r.FGColor
	}
	inv.Items = append(inv.Items, entry)
	w.Add(pickerID, inv)
	w.DestroyEntity(itemID)

	log.Addf(assets.ColorGreen, "You picked up a %s!", name)
	logger.Log.WithFields(logrus.Fields{"entity": pickerID, "item": name, "slots": len(inv.Items)}).Debug("item picked up")
	return true
}
