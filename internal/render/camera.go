package render

// Camera translates between world coordinates and screen coordinates.
// Each tile takes one terminal column.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera of the given view size at the origin.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so that (cx, cy) is in the middle, without
// scrolling past the edges of a mapW×mapH map.
func (c *Camera) Center(cx, cy, mapW, mapH int) {
	c.OffsetX = clamp(cx-c.ViewWidth/2, 0, mapW-c.ViewWidth)
	c.OffsetY = clamp(cy-c.ViewHeight/2, 0, mapH-c.ViewHeight)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}

// clamp bounds v to [lo, hi]; a range with hi < lo pins v to lo.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
