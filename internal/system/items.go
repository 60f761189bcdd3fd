package system

import (
	"fmt"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// UseResult is what an item effect reports back.
type UseResult uint8

const (
	UsedUp    UseResult = iota // consumed, remove from inventory
	Cancelled                  // nothing happened, keep it
)

func (r UseResult) String() string {
	if r == UsedUp {
		return "used up"
	}
	return "cancelled"
}

// ItemRules are the magnitudes of every item effect.
type ItemRules struct {
	HealAmount      int
	LightningDamage int
	LightningRange  int
	ConfuseRange    int
	ConfuseTurns    int
}

// ItemContext is the state an item effect reads and mutates.
type ItemContext struct {
	World *ecs.World
	Log   *msglog.Log
	FOV   *Visibility
	Rules ItemRules
}

type itemEffect func(ctx ItemContext, userID ecs.EntityID) UseResult

var itemEffects = map[component.ItemKind]itemEffect{
	component.ItemHeal:      castHeal,
	component.ItemLightning: castLightning,
	component.ItemConfuse:   castConfuse,
}

// UseItem applies the inventory item at index. UsedUp removes it; Cancelled
// leaves the inventory untouched and logs "Cancelled" unless the effect
// already explained why. Panics on an index outside the inventory.
func UseItem(ctx ItemContext, userID ecs.EntityID, index int) UseResult {
	c := ctx.World.Get(userID, component.CInventory)
	if c == nil {
		panic("system: entity has no inventory")
	}
	inv := c.(component.Inventory)
	if index < 0 || index >= len(inv.Items) {
		panic(fmt.Sprintf("system: inventory index %d out of range [0,%d)", index, len(inv.Items)))
	}
	item := inv.Items[index]

	before := ctx.Log.Len()
	result := itemEffects[item.Kind](ctx, userID)

	switch result {
	case UsedUp:
		inv.Items = append(inv.Items[:index:index], inv.Items[index+1:]...)
		ctx.World.Add(userID, inv)
	case Cancelled:
		if ctx.Log.Len() == before {
			ctx.Log.Add("Cancelled", assets.ColorWhite)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"entity": userID,
		"item":   item.Name,
		"result": result.String(),
	}).Debug("item used")
	return result
}

func castHeal(ctx ItemContext, userID ecs.EntityID) UseResult {
	f := fighterOf(ctx.World, userID)
	if f.HP == f.MaxHP {
		ctx.Log.Add("You are already at full health.", assets.ColorRed)
		return Cancelled
	}
	ctx.Log.Add("Your wounds start to feel better!", assets.ColorLightViolet)
	Heal(ctx.World, userID, ctx.Rules.HealAmount)
	return UsedUp
}

func castLightning(ctx ItemContext, userID ecs.EntityID) UseResult {
	target := ClosestMonster(ctx.World, ctx.FOV, userID, ctx.Rules.LightningRange)
	if target == ecs.NilEntity {
		ctx.Log.Add("No enemy is close enough to strike.", assets.ColorRed)
		return Cancelled
	}
	ctx.Log.Addf(assets.ColorLightBlue,
		"A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		NameOf(ctx.World, target), ctx.Rules.LightningDamage)
	TakeDamage(ctx.World, ctx.Log, target, ctx.Rules.LightningDamage)
	return UsedUp
}

func castConfuse(ctx ItemContext, userID ecs.EntityID) UseResult {
	target := ClosestMonster(ctx.World, ctx.FOV, userID, ctx.Rules.ConfuseRange)
	if target == ecs.NilEntity {
		ctx.Log.Add("No enemy is close enough to strike.", assets.ColorRed)
		return Cancelled
	}
	base := component.BehaviorBasic
	if c := ctx.World.Get(target, component.CAI); c != nil {
		base = c.(component.AI).Behavior
	}
	ctx.World.Add(target, component.AI{
		Behavior:  base,
		Confusion: &component.Confusion{TurnsLeft: ctx.Rules.ConfuseTurns},
	})
	ctx.Log.Addf(assets.ColorLightGreen,
		"The eyes of %s look vacant, as he starts to stumble around!", NameOf(ctx.World, target))
	return UsedUp
}

// ClosestMonster returns the nearest visible entity with both Fighter and AI,
// other than fromID, whose distance is below maxRange+1. Ties go to the
// earliest created. Returns ecs.NilEntity when none qualifies.
func ClosestMonster(w *ecs.World, fov *Visibility, fromID ecs.EntityID, maxRange int) ecs.EntityID {
	closest := ecs.NilEntity
	closestDist := float64(maxRange + 1)
	for _, id := range w.Query(component.CFighter, component.CAI, component.CPosition) {
		if id == fromID {
			continue
		}
		p := w.Get(id, component.CPosition).(component.Position)
		if !fov.IsVisible(p.X, p.Y) {
			continue
		}
		if d := DistanceTo(w, fromID, p.X, p.Y); d < closestDist {
			closest = id
			closestDist = d
		}
	}
	return closest
}
