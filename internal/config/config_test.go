package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchStockGame(t *testing.T) {
	c := Default()
	assert.Equal(t, 80, c.Dungeon.Width)
	assert.Equal(t, 43, c.Dungeon.Height)
	assert.Equal(t, 30, c.Dungeon.MaxRooms)
	assert.Equal(t, 6, c.Dungeon.RoomMinSize)
	assert.Equal(t, 10, c.Dungeon.RoomMaxSize)
	assert.Equal(t, 3, c.Dungeon.MaxRoomMonsters)
	assert.Equal(t, 2, c.Dungeon.MaxRoomItems)
	assert.Equal(t, 10, c.FOV.TorchRadius)
	assert.True(t, c.FOV.LightWalls)
	assert.Equal(t, Rules{
		HealAmount:        4,
		LightningDamage:   40,
		LightningRange:    5,
		ConfuseRange:      8,
		ConfuseTurns:      10,
		InventoryCapacity: 26,
	}, c.Rules)
	require.NoError(t, c.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ROGUE_SEED", "1234")
	t.Setenv("ROGUE_MAP_WIDTH", "60")
	t.Setenv("ROGUE_MAX_ROOMS", "1")
	t.Setenv("ROGUE_FOV_LIGHT_WALLS", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SSH_PORT", "2323")

	c := Load()
	assert.EqualValues(t, 1234, c.Seed)
	assert.Equal(t, 60, c.Dungeon.Width)
	assert.Equal(t, 1, c.Dungeon.MaxRooms)
	assert.False(t, c.FOV.LightWalls)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 2323, c.SSH.Port)
}

func TestLoadKeepsDefaultOnGarbage(t *testing.T) {
	t.Setenv("ROGUE_MAP_HEIGHT", "tall")
	t.Setenv("ROGUE_FOV_LIGHT_WALLS", "maybe")

	c := Load()
	assert.Equal(t, 43, c.Dungeon.Height)
	assert.True(t, c.FOV.LightWalls)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"room larger than map", func(c *Config) { c.Dungeon.Width = 8 }, false},
		{"min above max", func(c *Config) { c.Dungeon.RoomMinSize = 12 }, false},
		{"tiny rooms", func(c *Config) { c.Dungeon.RoomMinSize = 2 }, false},
		{"too many slots", func(c *Config) { c.Rules.InventoryCapacity = 27 }, false},
		{"no slots", func(c *Config) { c.Rules.InventoryCapacity = 0 }, false},
		{"negative radius", func(c *Config) { c.FOV.TorchRadius = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
