package system

import (
	"math/rand"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// AIContext is the shared state an AI turn reads and mutates.
type AIContext struct {
	World    *ecs.World
	Map      *gamemap.GameMap
	Log      *msglog.Log
	Rand     *rand.Rand
	FOV      *Visibility // the player's current field of view
	PlayerID ecs.EntityID
}

// ProcessAI gives every AI-controlled entity one turn, in creation order.
// Entities that lose their AI mid-pass (killed) are skipped.
func ProcessAI(ctx AIContext) {
	for _, id := range ctx.World.Query(component.CAI, component.CPosition) {
		if !ctx.World.Has(id, component.CAI) {
			continue
		}
		TakeTurn(ctx, id)
	}
}

// TakeTurn runs one AI step for id. The AI component is detached while the
// step runs and written back afterwards, unless the entity died meanwhile.
func TakeTurn(ctx AIContext, id ecs.EntityID) {
	c := ctx.World.Get(id, component.CAI)
	if c == nil {
		return
	}
	ai := c.(component.AI)
	ctx.World.Remove(id, component.CAI)

	var next component.AI
	if ai.Confused() {
		next = confusedTurn(ctx, id, ai)
	} else {
		next = basicTurn(ctx, id, ai)
	}

	if ctx.World.Has(id, component.CFighter) {
		ctx.World.Add(id, next)
	}
}

// basicTurn approaches the player while visible and attacks once adjacent.
func basicTurn(ctx AIContext, id ecs.EntityID, ai component.AI) component.AI {
	pos := positionOf(ctx.World, id)
	if !ctx.FOV.IsVisible(pos.X, pos.Y) {
		return ai
	}
	player := positionOf(ctx.World, ctx.PlayerID)
	if DistanceTo(ctx.World, id, player.X, player.Y) >= 2 {
		MoveTowards(ctx.World, ctx.Map, id, player.X, player.Y)
		return ai
	}
	if pf := ctx.World.Get(ctx.PlayerID, component.CFighter); pf != nil && pf.(component.Fighter).HP > 0 {
		Attack(ctx.World, ctx.Log, id, ctx.PlayerID)
	}
	return ai
}

// confusedTurn stumbles in a random direction until the counter runs out,
// then restores the base behaviour. A counter of n yields n+1 confused steps.
func confusedTurn(ctx AIContext, id ecs.EntityID, ai component.AI) component.AI {
	if ai.Confusion.TurnsLeft >= 0 {
		dx := ctx.Rand.Intn(3) - 1
		dy := ctx.Rand.Intn(3) - 1
		MoveBy(ctx.World, ctx.Map, id, dx, dy)
		return component.AI{
			Behavior:  ai.Behavior,
			Confusion: &component.Confusion{TurnsLeft: ai.Confusion.TurnsLeft - 1},
		}
	}
	name := NameOf(ctx.World, id)
	ctx.Log.Addf(assets.ColorRed, "The %s is no longer confused!", name)
	logger.Log.WithFields(logrus.Fields{"entity": id, "name": name}).Debug("confusion expired")
	return component.AI{Behavior: ai.Behavior}
}
