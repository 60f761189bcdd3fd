package generate

import (
	"math/rand"

	"tombs-roguelike/internal/component"

	"github.com/gdamore/tcell/v2"
)

// MonsterSpawnEntry describes one monster species and its relative weight.
type MonsterSpawnEntry struct {
	Name    string
	Glyph   rune
	Color   tcell.Color
	MaxHP   int
	Defense int
	Power   int
	Weight  int
}

// ItemSpawnEntry describes one item type and its relative weight.
type ItemSpawnEntry struct {
	Name   string
	Glyph  rune
	Color  tcell.Color
	Kind   component.ItemKind
	Weight int
}

// Config drives procedural generation of one dungeon.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	RoomMinSize         int
	RoomMaxSize         int
	MaxRoomMonsters     int
	MaxRoomItems        int
	MonsterTable        []MonsterSpawnEntry
	ItemTable           []ItemSpawnEntry
	Rand                *rand.Rand
}
