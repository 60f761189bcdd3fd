package component

import "tombs-roguelike/internal/ecs"

const CAI ecs.ComponentType = 5

// AIBehavior is the base behaviour a monster returns to once any overlay ends.
type AIBehavior uint8

const (
	BehaviorBasic AIBehavior = iota // approach when visible, attack when adjacent
)

// Confusion is a temporary overlay on top of the base behaviour.
type Confusion struct {
	TurnsLeft int
}

type AI struct {
	Behavior  AIBehavior
	Confusion *Confusion
}

// Confused reports whether the confusion overlay is active.
func (a AI) Confused() bool { return a.Confusion != nil }

func (AI) Type() ecs.ComponentType { return CAI }
