package factory

import (
	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/generate"
)

// NewPlayer creates the player entity at (x, y). Call it before any other
// entity is created so the player acts first in creation order.
func NewPlayer(w *ecs.World, x, y int, def assets.PlayerDef, capacity int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: def.Name})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		RenderOrder: component.RenderActor,
	})
	w.Add(id, component.Fighter{
		MaxHP:   def.MaxHP,
		HP:      def.MaxHP,
		Defense: def.Defense,
		Power:   def.Power,
		OnDeath: component.DeathPlayer,
	})
	w.Add(id, component.Inventory{Capacity: capacity})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	w.Add(id, component.TagAlive{})
	return id
}

// NewMonster creates a monster entity from a spawn entry.
func NewMonster(w *ecs.World, entry generate.MonsterSpawnEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: entry.Name})
	w.Add(id, component.Renderable{
		Glyph:       entry.Glyph,
		FGColor:     entry.Color,
		RenderOrder: component.RenderActor,
	})
	w.Add(id, component.Fighter{
		MaxHP:   entry.MaxHP,
		HP:      entry.MaxHP,
		Defense: entry.Defense,
		Power:   entry.Power,
		OnDeath: component.DeathMonster,
	})
	w.Add(id, component.AI{Behavior: component.BehaviorBasic})
	w.Add(id, component.TagBlocking{})
	w.Add(id, component.TagAlive{})
	return id
}

// NewItem creates a pickable item entity from a spawn entry.
func NewItem(w *ecs.World, entry generate.ItemSpawnEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: entry.Name})
	w.Add(id, component.Renderable{
		Glyph:       entry.Glyph,
		FGColor:     entry.Color,
		RenderOrder: component.RenderItem,
	})
	w.Add(id, component.Item{Kind: entry.Kind})
	return id
}

// Spawn creates the entity described by s and returns its ID.
func Spawn(w *ecs.World, s generate.Spawn) ecs.EntityID {
	if s.Monster != nil {
		return NewMonster(w, *s.Monster, s.X, s.Y)
	}
	return NewItem(w, *s.Item, s.X, s.Y)
}
