package generate

import "tombs-roguelike/internal/gamemap"

// carveTunnel digs an L-shaped tunnel from (x1,y1) to (x2,y2). A coin flip
// picks whether the horizontal leg runs first (along y1) or last (along y2).
func carveTunnel(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	carveL(gmap, x1, y1, x2, y2, cfg.Rand.Intn(2) == 0)
}

func carveL(gmap *gamemap.GameMap, x1, y1, x2, y2 int, horizontalFirst bool) {
	if horizontalFirst {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Carve(x, y)
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Carve(x, y)
		}
	}
}

// carveRoom opens the interior of room, leaving its outline as wall.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Carve(x, y)
			}
		}
	}
}
