package gamemap

// Tile is one map cell. Explored flips to true the first time the tile is
// seen and never flips back.
type Tile struct {
	Blocked    bool
	BlockSight bool
	Explored   bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{}
}

// IsWall reports whether the tile blocks sight; walls and only walls do.
func (t Tile) IsWall() bool { return t.BlockSight }
