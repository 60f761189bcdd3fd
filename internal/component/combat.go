package component

import "tombs-roguelike/internal/ecs"

const CFighter ecs.ComponentType = 2

// DeathKind selects the routine run once when a Fighter's HP reaches zero.
type DeathKind uint8

const (
	DeathPlayer  DeathKind = iota // stays in place as a corpse glyph
	DeathMonster                  // becomes passable remains, loses Fighter and AI
)

// Fighter holds the combat stats of anything that can attack or be attacked.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathKind
}

func (Fighter) Type() ecs.ComponentType { return CFighter }
