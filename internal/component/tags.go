package component

import "tombs-roguelike/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
	CTagAlive    ecs.ComponentType = 10
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }

// TagAlive marks an entity that has not died yet.
type TagAlive struct{}

func (TagAlive) Type() ecs.ComponentType { return CTagAlive }
