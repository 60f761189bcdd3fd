package system

import (
	"math"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/msglog"
)

// MoveResult describes the outcome of a PlayerMoveOrAttack call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out of bounds or blocking entity
	MoveAttack                    // bumped a fighter and attacked it
)

// positionOf returns the entity's position. Panics if it has none.
func positionOf(w *ecs.World, id ecs.EntityID) component.Position {
	c := w.Get(id, component.CPosition)
	if c == nil {
		panic("system: entity has no position")
	}
	return c.(component.Position)
}

// BlockingEntityAt returns the first blocking entity standing on (x, y), or
// ecs.NilEntity.
func BlockingEntityAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// IsBlocked reports whether (x, y) is impassable terrain or holds a blocking
// entity.
func IsBlocked(w *ecs.World, gmap *gamemap.GameMap, x, y int) bool {
	if gmap.IsBlocked(x, y) {
		return true
	}
	return BlockingEntityAt(w, x, y) != ecs.NilEntity
}

// MoveBy shifts the entity by (dx, dy) when the destination is free.
// Reports whether the entity moved.
func MoveBy(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) bool {
	pos := positionOf(w, id)
	nx, ny := pos.X+dx, pos.Y+dy
	if IsBlocked(w, gmap, nx, ny) {
		return false
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	return true
}

// MoveTowards takes one step toward (tx, ty) along the normalised direction,
// rounded to the nearest of the eight neighbours.
func MoveTowards(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, tx, ty int) bool {
	pos := positionOf(w, id)
	dx := float64(tx - pos.X)
	dy := float64(ty - pos.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return false
	}
	return MoveBy(w, gmap, id, int(math.Round(dx/dist)), int(math.Round(dy/dist)))
}

// Distance returns the Euclidean distance between two entities.
func Distance(w *ecs.World, a, b ecs.EntityID) float64 {
	pb := positionOf(w, b)
	return DistanceTo(w, a, pb.X, pb.Y)
}

// DistanceTo returns the Euclidean distance from an entity to (x, y).
func DistanceTo(w *ecs.World, id ecs.EntityID, x, y int) float64 {
	p := positionOf(w, id)
	dx := float64(x - p.X)
	dy := float64(y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// fighterAt returns the first entity with a Fighter standing on (x, y).
func fighterAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CFighter, component.CPosition) {
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// PlayerMoveOrAttack moves the entity by (dx, dy), or attacks whatever
// fighter occupies the destination. Returns the outcome and, for MoveAttack,
// the target.
func PlayerMoveOrAttack(w *ecs.World, gmap *gamemap.GameMap, log *msglog.Log, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	pos := positionOf(w, id)
	nx, ny := pos.X+dx, pos.Y+dy

	if target := fighterAt(w, nx, ny); target != ecs.NilEntity && target != id {
		Attack(w, log, id, target)
		return MoveAttack, target
	}
	if MoveBy(w, gmap, id, dx, dy) {
		return MoveOK, ecs.NilEntity
	}
	return MoveBlocked, ecs.NilEntity
}
