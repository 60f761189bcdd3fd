package system

import (
	"testing"

	"tombs-roguelike/internal/gamemap"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	gmap := openMap(20, 20)
	v := ComputeFOV(gmap, 5, 5, 5, true)
	if !v.IsVisible(5, 5) {
		t.Error("origin must always be visible")
	}
	// Even with a zero radius.
	if v := ComputeFOV(gmap, 5, 5, 0, true); !v.IsVisible(5, 5) || v.Size() != 1 {
		t.Errorf("radius 0 should light only the origin; got %d tiles", v.Size())
	}
}

func TestFOVDoesNotTouchMap(t *testing.T) {
	gmap := openMap(20, 20)
	ComputeFOV(gmap, 10, 10, 8, true)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if gmap.At(x, y).Explored {
				t.Fatalf("ComputeFOV must not mark (%d,%d) explored", x, y)
			}
		}
	}
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	// dx²+dy² < radius² → 9 < 25.
	gmap := openMap(20, 20)
	v := ComputeFOV(gmap, 10, 10, 5, true)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}, {12, 12}} {
		if !v.IsVisible(pos[0], pos[1]) {
			t.Errorf("tile (%d,%d) should be visible (radius=5)", pos[0], pos[1])
		}
	}
}

func TestFOVRadiusIsStrict(t *testing.T) {
	// Tiles exactly radius away are outside: 25 < 25 is false.
	gmap := openMap(20, 20)
	v := ComputeFOV(gmap, 10, 10, 5, true)

	for _, pos := range [][2]int{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		if v.IsVisible(pos[0], pos[1]) {
			t.Errorf("tile (%d,%d) at distance 5 should not be visible with radius=5", pos[0], pos[1])
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	gmap := openMap(20, 20)
	gmap.Set(10, 8, gamemap.MakeWall())

	v := ComputeFOV(gmap, 10, 10, 8, true)
	if !v.IsVisible(10, 8) {
		t.Error("the wall tile at (10,8) should be lit when walls are lit")
	}
	for _, y := range []int{7, 6, 5} {
		if v.IsVisible(10, y) {
			t.Errorf("tile (10,%d) behind the wall should not be visible", y)
		}
	}
}

func TestFOVLightWallsOff(t *testing.T) {
	gmap := openMap(20, 20)
	gmap.Set(10, 8, gamemap.MakeWall())

	v := ComputeFOV(gmap, 10, 10, 8, false)
	if v.IsVisible(10, 8) {
		t.Error("opaque tile must stay dark when walls are not lit")
	}
	if !v.IsVisible(10, 9) {
		t.Error("open tile in front of the wall should be visible")
	}
}

func TestFOVEnclosedRoom(t *testing.T) {
	// A 3x3 room inside solid rock: the room and its walls are visible,
	// nothing beyond.
	gmap := gamemap.New(15, 15)
	for y := 6; y <= 8; y++ {
		for x := 6; x <= 8; x++ {
			gmap.Carve(x, y)
		}
	}
	v := ComputeFOV(gmap, 7, 7, 10, true)
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			inRing := x >= 5 && x <= 9 && y >= 5 && y <= 9
			if v.IsVisible(x, y) != inRing {
				t.Fatalf("(%d,%d): visible=%v, want %v", x, y, v.IsVisible(x, y), inRing)
			}
		}
	}
}

func TestFOVOutOfBoundsOriginIsEmpty(t *testing.T) {
	gmap := openMap(10, 10)
	v := ComputeFOV(gmap, -3, 4, 5, true)
	if v.Size() != 0 {
		t.Errorf("expected empty visibility, got %d tiles", v.Size())
	}
}

func TestNilVisibilitySeesNothing(t *testing.T) {
	var v *Visibility
	if v.IsVisible(0, 0) || v.Size() != 0 {
		t.Error("nil visibility must be empty")
	}
	v.Each(func(int, int) { t.Error("nil visibility must not iterate") })
}

func TestVisibilityEachMatchesSize(t *testing.T) {
	v := ComputeFOV(openMap(20, 20), 10, 10, 4, true)
	n := 0
	v.Each(func(x, y int) {
		if !v.IsVisible(x, y) {
			t.Fatalf("Each yielded (%d,%d) which is not visible", x, y)
		}
		n++
	})
	if n != v.Size() {
		t.Errorf("Each visited %d tiles, Size()=%d", n, v.Size())
	}
}
