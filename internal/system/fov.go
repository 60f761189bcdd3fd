package system

import (
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Visibility is the set of tiles lit from one origin. A nil *Visibility sees
// nothing.
type Visibility struct {
	Origin Point
	Radius int
	tiles  mapset.Set[Point]
}

// IsVisible reports whether (x, y) is lit.
func (v *Visibility) IsVisible(x, y int) bool {
	if v == nil {
		return false
	}
	return v.tiles.Has(Point{X: x, Y: y})
}

// Size returns the number of lit tiles.
func (v *Visibility) Size() int {
	if v == nil {
		return 0
	}
	return v.tiles.Size()
}

// Each calls fn for every lit tile, in no particular order.
func (v *Visibility) Each(fn func(x, y int)) {
	if v == nil {
		return
	}
	v.tiles.Each(func(p Point) { fn(p.X, p.Y) })
}

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// ComputeFOV runs recursive shadowcasting from (cx, cy). A tile is lit when
// it lies strictly inside the radius circle and is either transparent or,
// with lightWalls, the first opaque tile on a ray. The map is not modified.
//
// Shadowcasting is not symmetric: A seeing B does not imply B sees A.
func ComputeFOV(gmap *gamemap.GameMap, cx, cy, radius int, lightWalls bool) *Visibility {
	v := &Visibility{
		Origin: Point{X: cx, Y: cy},
		Radius: radius,
		tiles:  mapset.New[Point](),
	}
	if !gmap.InBounds(cx, cy) {
		return v
	}
	v.tiles.Put(v.Origin)

	for _, m := range octants {
		castLight(gmap, v, cx, cy, 1, 1.0, 0.0, radius, lightWalls, m[0], m[1], m[2], m[3])
	}

	logger.Log.WithFields(logrus.Fields{
		"x":       cx,
		"y":       cy,
		"radius":  radius,
		"visible": v.tiles.Size(),
	}).Debug("fov computed")
	return v
}

// castLight casts light for one octant.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.GameMap, v *Visibility, cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := gmap.BlocksSight(wx, wy)

			if float64(dx*dx+dy*dy) < radiusSq && gmap.InBounds(wx, wy) && (!opaque || lightWalls) {
				v.tiles.Put(Point{X: wx, Y: wy})
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(gmap, v, cx, cy, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
