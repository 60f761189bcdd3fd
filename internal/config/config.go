// Package config loads runtime settings from the environment. main loads a
// .env file (godotenv) before calling Load, so both sources are covered.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tombs-roguelike/internal/logger"
)

// Dungeon sizes the generated map and how densely it is populated.
type Dungeon struct {
	Width           int
	Height          int
	MaxRooms        int
	RoomMinSize     int
	RoomMaxSize     int
	MaxRoomMonsters int
	MaxRoomItems    int
}

// FOV configures the player's light.
type FOV struct {
	TorchRadius int
	LightWalls  bool
}

// Rules holds gameplay magnitudes.
type Rules struct {
	HealAmount        int
	LightningDamage   int
	LightningRange    int
	ConfuseRange      int
	ConfuseTurns      int
	InventoryCapacity int
}

// SSH configures cmd/server.
type SSH struct {
	Port        int
	HostKeyPath string
}

type Config struct {
	Seed      int64 // 0 picks a time-based seed
	LogLevel  string
	LogFormat string
	LogFile   string
	Dungeon   Dungeon
	FOV       FOV
	Rules     Rules
	SSH       SSH
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Dungeon: Dungeon{
			Width:           80,
			Height:          43,
			MaxRooms:        30,
			RoomMinSize:     6,
			RoomMaxSize:     10,
			MaxRoomMonsters: 3,
			MaxRoomItems:    2,
		},
		FOV: FOV{TorchRadius: 10, LightWalls: true},
		Rules: Rules{
			HealAmount:        4,
			LightningDamage:   40,
			LightningRange:    5,
			ConfuseRange:      8,
			ConfuseTurns:      10,
			InventoryCapacity: 26,
		},
		SSH: SSH{Port: 2222, HostKeyPath: "server_host_key"},
	}
}

// Load reads the environment on top of Default. Malformed numbers keep the
// default and log a warning.
func Load() *Config {
	c := Default()
	c.Seed = getEnvInt64("ROGUE_SEED", c.Seed)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)

	c.Dungeon.Width = getEnvInt("ROGUE_MAP_WIDTH", c.Dungeon.Width)
	c.Dungeon.Height = getEnvInt("ROGUE_MAP_HEIGHT", c.Dungeon.Height)
	c.Dungeon.MaxRooms = getEnvInt("ROGUE_MAX_ROOMS", c.Dungeon.MaxRooms)
	c.Dungeon.RoomMinSize = getEnvInt("ROGUE_ROOM_MIN_SIZE", c.Dungeon.RoomMinSize)
	c.Dungeon.RoomMaxSize = getEnvInt("ROGUE_ROOM_MAX_SIZE", c.Dungeon.RoomMaxSize)
	c.Dungeon.MaxRoomMonsters = getEnvInt("ROGUE_MAX_ROOM_MONSTERS", c.Dungeon.MaxRoomMonsters)
	c.Dungeon.MaxRoomItems = getEnvInt("ROGUE_MAX_ROOM_ITEMS", c.Dungeon.MaxRoomItems)

	c.FOV.TorchRadius = getEnvInt("ROGUE_TORCH_RADIUS", c.FOV.TorchRadius)
	c.FOV.LightWalls = getEnvBool("ROGUE_FOV_LIGHT_WALLS", c.FOV.LightWalls)

	c.Rules.InventoryCapacity = getEnvInt("ROGUE_INVENTORY_CAPACITY", c.Rules.InventoryCapacity)

	c.SSH.Port = getEnvInt("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = getEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	return c
}

// Validate rejects settings the generator or the inventory menu cannot honour.
func (c *Config) Validate() error {
	d := c.Dungeon
	var errs []error
	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", d.Width, d.Height))
	}
	if d.RoomMinSize < 3 {
		errs = append(errs, fmt.Errorf("room min size %d must be at least 3", d.RoomMinSize))
	}
	if d.RoomMinSize > d.RoomMaxSize {
		errs = append(errs, fmt.Errorf("room min size %d exceeds max size %d", d.RoomMinSize, d.RoomMaxSize))
	}
	if d.RoomMaxSize >= d.Width || d.RoomMaxSize >= d.Height {
		errs = append(errs, fmt.Errorf("room max size %d does not fit a %dx%d map", d.RoomMaxSize, d.Width, d.Height))
	}
	if d.MaxRoomMonsters < 0 || d.MaxRoomItems < 0 || d.MaxRooms < 0 {
		errs = append(errs, errors.New("room and spawn counts must not be negative"))
	}
	if c.FOV.TorchRadius < 0 {
		errs = append(errs, fmt.Errorf("torch radius %d must not be negative", c.FOV.TorchRadius))
	}
	if n := c.Rules.InventoryCapacity; n < 1 || n > 26 {
		errs = append(errs, fmt.Errorf("inventory capacity %d must be within 1..26", n))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("invalid integer, using default")
		return defaultValue
	}
	return v
}

func getEnvInt64(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("invalid integer, using default")
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("invalid boolean, using default")
		return defaultValue
	}
	return v
}
