package game

import (
	"math/rand"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/config"
	"tombs-roguelike/internal/generate"
)

// levelConfig builds the generator settings for one dungeon.
func levelConfig(cfg *config.Config, rng *rand.Rand) *generate.Config {
	d := cfg.Dungeon
	return &generate.Config{
		MapWidth:        d.Width,
		MapHeight:       d.Height,
		MaxRooms:        d.MaxRooms,
		RoomMinSize:     d.RoomMinSize,
		RoomMaxSize:     d.RoomMaxSize,
		MaxRoomMonsters: d.MaxRoomMonsters,
		MaxRoomItems:    d.MaxRoomItems,
		MonsterTable:    assets.MonsterTable(),
		ItemTable:       assets.ItemTable(),
		Rand:            rng,
	}
}
