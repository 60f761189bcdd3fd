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

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int // zero when the blow had no effect
	Killed bool
}

func fighterOf(w *ecs.World, id ecs.EntityID) component.Fighter {
	c := w.Get(id, component.CFighter)
	if c == nil {
		panic(fmt.Sprintf("system: entity %d has no fighter", id))
	}
	return c.(component.Fighter)
}

// NameOf returns the entity's display name, or "something".
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CNamed); c != nil {
		return c.(component.Named).Name
	}
	return "something"
}

// Attack resolves one blow from attacker against defender.
// Damage is power minus defense; a non-positive result has no effect.
// Both must be fighters and distinct, otherwise Attack panics.
func Attack(w *ecs.World, log *msglog.Log, attackerID, defenderID ecs.EntityID) AttackResult {
	if attackerID == defenderID {
		panic("system: an entity cannot attack itself")
	}
	atk := fighterOf(w, attackerID)
	def := fighterOf(w, defenderID)

	attacker, defender := NameOf(w, attackerID), NameOf(w, defenderID)
	damage := atk.Power - def.Defense
	if damage <= 0 {
		log.Addf(assets.ColorWhite, "%s attacks %s, but it has no effect!", attacker, defender)
		return AttackResult{}
	}
	log.Addf(assets.ColorWhite, "%s attacks %s for %d hit points.", attacker, defender, damage)
	return AttackResult{Damage: damage, Killed: TakeDamage(w, log, defenderID, damage)}
}

// TakeDamage subtracts damage from the entity's hp. The first time hp drops
// to zero or below, the entity's death routine runs; it never runs twice.
// Reports whether this call killed the entity.
func TakeDamage(w *ecs.World, log *msglog.Log, id ecs.EntityID, damage int) bool {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return false
	}
	f := c.(component.Fighter)
	if damage > 0 {
		f.HP -= damage
		w.Add(id, f)
	}
	if f.HP > 0 || !w.Has(id, component.CTagAlive) {
		return false
	}
	w.Remove(id, component.CTagAlive)
	deathRoutines[f.OnDeath](w, log, id)
	return true
}

// Heal raises hp by amount, never above max.
func Heal(w *ecs.World, id ecs.EntityID, amount int) {
	f := fighterOf(w, id)
	f.HP = min(f.HP+amount, f.MaxHP)
	w.Add(id, f)
}

var deathRoutines = map[component.DeathKind]func(*ecs.World, *msglog.Log, ecs.EntityID){
	component.DeathPlayer:  playerDeath,
	component.DeathMonster: monsterDeath,
}

func playerDeath(w *ecs.World, log *msglog.Log, id ecs.EntityID) {
	log.Add("You died!", assets.ColorRed)
	r := w.Get(id, component.CRenderable).(component.Renderable)
	r.Glyph = assets.GlyphCorpse
	r.FGColor = assets.ColorDarkRed
	w.Add(id, r)
	logger.Log.WithField("entity", id).Info("player died")
}

func monsterDeath(w *ecs.World, log *msglog.Log, id ecs.EntityID) {
	name := NameOf(w, id)
	log.Addf(assets.ColorOrange, "%s is dead!", name)

	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphCorpse,
		FGColor:     assets.ColorDarkRed,
		RenderOrder: component.RenderCorpse,
	})
	w.Add(id, component.Named{Name: "remains of " + name})
	w.Remove(id, component.CTagBlocking)
	w.Remove(id, component.CFighter)
	w.Remove(id, component.CAI)

	logger.Log.WithFields(logrus.Fields{"entity": id, "name": name}).Debug("monster died")
}
