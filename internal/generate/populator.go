package generate

import (
	"math/rand"

	"tombs-roguelike/internal/gamemap"
)

// Spawn is one entity to create at (X, Y). Exactly one of Monster and Item
// is set.
type Spawn struct {
	X, Y    int
	Monster *MonsterSpawnEntry
	Item    *ItemSpawnEntry
}

// Blocking reports whether the spawned entity will occupy its tile.
func (s Spawn) Blocking() bool { return s.Monster != nil }

// populateRoom rolls monsters and items for one room. Each draws a single
// random interior tile and is skipped when a blocking spawn already holds it.
func populateRoom(gmap *gamemap.GameMap, room gamemap.Rect, cfg *Config, occupied map[[2]int]bool) []Spawn {
	var spawns []Spawn

	numMonsters := cfg.Rand.Intn(cfg.MaxRoomMonsters + 1)
	for n := 0; n < numMonsters; n++ {
		x, y := randomInRoom(room, cfg)
		if gmap.IsBlocked(x, y) || occupied[[2]int{x, y}] {
			continue
		}
		idx := weightedIndex(cfg.Rand, monsterWeights(cfg.MonsterTable))
		if idx < 0 {
			continue
		}
		occupied[[2]int{x, y}] = true
		spawns = append(spawns, Spawn{X: x, Y: y, Monster: &cfg.MonsterTable[idx]})
	}

	numItems := cfg.Rand.Intn(cfg.MaxRoomItems + 1)
	for n := 0; n < numItems; n++ {
		x, y := randomInRoom(room, cfg)
		if gmap.IsBlocked(x, y) || occupied[[2]int{x, y}] {
			continue
		}
		idx := weightedIndex(cfg.Rand, itemWeights(cfg.ItemTable))
		if idx < 0 {
			continue
		}
		spawns = append(spawns, Spawn{X: x, Y: y, Item: &cfg.ItemTable[idx]})
	}
	return spawns
}

// randomInRoom returns a uniformly random interior tile of room.
func randomInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	x := room.X1 + 1 + cfg.Rand.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + cfg.Rand.Intn(room.Y2-room.Y1-1)
	return x, y
}

// weightedIndex picks an index with probability proportional to its weight.
// Returns -1 when no weight is positive.
func weightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

func monsterWeights(table []MonsterSpawnEntry) []int {
	out := make([]int, len(table))
	for i, e := range table {
		out[i] = e.Weight
	}
	return out
}

func itemWeights(table []ItemSpawnEntry) []int {
	out := make([]int, len(table))
	for i, e := range table {
		out[i] = e.Weight
	}
	return out
}
