package component

import (
	"tombs-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Render orders, lowest drawn first.
const (
	RenderCorpse = iota
	RenderItem
	RenderActor
)

type Renderable struct {
	Glyph       rune
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

const CNamed ecs.ComponentType = 4

// Named is the display name used in log messages and the look line.
type Named struct {
	Name string
}

func (Named) Type() ecs.ComponentType { return CNamed }
