package render

import (
	"sort"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// PanelHeight is the number of rows reserved under the map for the HUD.
const PanelHeight = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize adapts the map viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-PanelHeight, 0)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int, gmap *gamemap.GameMap) {
	r.camera.Center(x, y, gmap.Width, gmap.Height)
}

// ScreenToWorld converts a screen cell (e.g. the mouse) to world coordinates.
// ok is false outside the map viewport.
func (r *Renderer) ScreenToWorld(sx, sy int) (x, y int, ok bool) {
	if sx < 0 || sy < 0 || sx >= r.camera.ViewWidth || sy >= r.camera.ViewHeight {
		return 0, 0, false
	}
	x, y = r.camera.ScreenToWorld(sx, sy)
	return x, y, true
}

// DrawFrame clears the screen and renders tiles and entities.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap, fov *system.Visibility) {
	r.screen.Clear()
	r.drawMap(gmap, fov)
	r.drawEntities(w, fov)
}

// drawMap paints every lit or explored tile; unexplored tiles stay black.
func (r *Renderer) drawMap(gmap *gamemap.GameMap, fov *system.Visibility) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			lit := fov.IsVisible(x, y)
			if !lit && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			style := tcell.StyleDefault.Background(tileBackground(tile, lit))
			r.screen.SetContent(sx, sy, ' ', nil, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders entities standing in the field of view, lowest
// RenderOrder first so actors end up on top of items and corpses.
func (r *Renderer) drawEntities(w *ecs.World, fov *system.Visibility) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !fov.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		// Keep the tile's background under the glyph.
		_, _, style, _ := r.screen.GetContent(sx, sy)
		r.screen.SetContent(sx, sy, e.rend.Glyph, nil, style.Foreground(e.rend.FGColor))
	}
}
