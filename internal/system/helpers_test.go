package system

import (
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/gamemap"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gmap.Carve(x, y)
		}
	}
	return gmap
}

// newWorld creates a world whose first entity is a 30/2/5 player at (px, py).
func newWorld(px, py int) (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.Position{X: px, Y: py})
	w.Add(player, component.Named{Name: "player"})
	w.Add(player, component.Renderable{Glyph: '@', RenderOrder: component.RenderActor})
	w.Add(player, component.Fighter{MaxHP: 30, HP: 30, Defense: 2, Power: 5, OnDeath: component.DeathPlayer})
	w.Add(player, component.Inventory{Capacity: component.DefaultInventoryCapacity})
	w.Add(player, component.TagPlayer{})
	w.Add(player, component.TagBlocking{})
	w.Add(player, component.TagAlive{})
	return w, player
}

// addMonster adds a basic-AI monster.
func addMonster(w *ecs.World, name string, x, y, hp, def, pow int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: name})
	w.Add(id, component.Renderable{Glyph: 'o', RenderOrder: component.RenderActor})
	w.Add(id, component.Fighter{MaxHP: hp, HP: hp, Defense: def, Power: pow, OnDeath: component.DeathMonster})
	w.Add(id, component.AI{Behavior: component.BehaviorBasic})
	w.Add(id, component.TagBlocking{})
	w.Add(id, component.TagAlive{})
	return id
}

// addItem drops an item entity at (x, y).
func addItem(w *ecs.World, name string, kind component.ItemKind, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: name})
	w.Add(id, component.Renderable{Glyph: '!', RenderOrder: component.RenderItem})
	w.Add(id, component.Item{Kind: kind})
	return id
}

func fighter(w *ecs.World, id ecs.EntityID) component.Fighter {
	return w.Get(id, component.CFighter).(component.Fighter)
}

func position(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}
