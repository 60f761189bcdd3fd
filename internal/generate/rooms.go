package generate

import (
	"context"
	"time"

	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/telemetry"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Result is everything Generate produced: the carved map, the player start
// and the entities to create, in placement order.
type Result struct {
	Map              *gamemap.GameMap
	PlayerX, PlayerY int
	Rooms            []gamemap.Rect
	Spawns           []Spawn
}

// Generate builds a dungeon of randomly placed, non-overlapping rectangular
// rooms joined in acceptance order by L-shaped tunnels.
//
// Each attempt draws a room size and position; a candidate that intersects an
// accepted room is dropped without retry. The player starts at the centre of
// the first accepted room.
func Generate(ctx context.Context, cfg *Config) *Result {
	_, span := telemetry.Tracer("generate").Start(ctx, "dungeon.generate")
	defer span.End()
	started := time.Now()

	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	res := &Result{Map: gmap}
	occupied := make(map[[2]int]bool)

	for attempt := 0; attempt < cfg.MaxRooms; attempt++ {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		if w >= cfg.MapWidth || h >= cfg.MapHeight {
			continue
		}
		x := cfg.Rand.Intn(cfg.MapWidth - w)
		y := cfg.Rand.Intn(cfg.MapHeight - h)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, res.Rooms) {
			continue
		}

		carveRoom(gmap, room)
		cx, cy := room.Center()
		if len(res.Rooms) == 0 {
			res.PlayerX, res.PlayerY = cx, cy
			occupied[[2]int{cx, cy}] = true
		} else {
			px, py := res.Rooms[len(res.Rooms)-1].Center()
			carveTunnel(gmap, px, py, cx, cy, cfg)
		}
		res.Spawns = append(res.Spawns, populateRoom(gmap, room, cfg, occupied)...)
		res.Rooms = append(res.Rooms, room)

		logger.Log.WithFields(logrus.Fields{
			"room":    len(res.Rooms) - 1,
			"attempt": attempt,
			"x1":      room.X1,
			"y1":      room.Y1,
			"x2":      room.X2,
			"y2":      room.Y2,
		}).Debug("room carved")
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.MapWidth),
		attribute.Int("dungeon.height", cfg.MapHeight),
		attribute.Int("dungeon.rooms", len(res.Rooms)),
		attribute.Int("dungeon.spawns", len(res.Spawns)),
		attribute.Int64("dungeon.generation_ms", time.Since(started).Milliseconds()),
	)
	return res
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}
