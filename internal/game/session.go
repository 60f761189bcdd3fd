package game

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/config"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/factory"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/generate"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/msglog"
	"tombs-roguelike/internal/system"
	"tombs-roguelike/internal/telemetry"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Session is one run: a generated dungeon, its entities and the message log.
// It holds no screen; Game drives it from terminal input.
type Session struct {
	ID       uuid.UUID
	World    *ecs.World
	Map      *gamemap.GameMap
	Log      *msglog.Log
	PlayerID ecs.EntityID
	Rooms    []gamemap.Rect

	cfg   *config.Config
	rng   *rand.Rand
	entry *logrus.Entry

	fov      *system.Visibility
	fovAt    component.Position
	fovValid bool

	monsters int // monsters spawned at generation
	runLog   RunLog
	finished bool
}

// NewSession generates a dungeon and places the player, monsters and items.
// A zero cfg.Seed picks a time-based seed.
func NewSession(ctx context.Context, cfg *config.Config) *Session {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.new")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		ID:     uuid.New(),
		World:  ecs.NewWorld(),
		Log:    msglog.New(),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		runLog: newRunLog(),
	}
	s.entry = logger.Log.WithField("session", s.ID.String())

	res := generate.Generate(ctx, levelConfig(cfg, s.rng))
	s.Map = res.Map
	s.Rooms = res.Rooms

	s.PlayerID = factory.NewPlayer(s.World, res.PlayerX, res.PlayerY, assets.Player, cfg.Rules.InventoryCapacity)
	for _, sp := range res.Spawns {
		factory.Spawn(s.World, sp)
		if sp.Monster != nil {
			s.monsters++
		}
	}
	s.RefreshFOV()
	s.Log.Add(assets.Welcome, assets.ColorRed)

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int64("session.seed", seed),
		attribute.Int("session.entities", s.World.Len()),
	)
	s.entry.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    len(s.Rooms),
		"entities": s.World.Len(),
	}).Info("session started")
	return s
}

// Entry returns the session-scoped log entry.
func (s *Session) Entry() *logrus.Entry { return s.entry }

// PlayerPosition returns where the player stands.
func (s *Session) PlayerPosition() component.Position {
	return s.World.Get(s.PlayerID, component.CPosition).(component.Position)
}

// PlayerAlive reports whether the player can still act.
func (s *Session) PlayerAlive() bool {
	return s.World.Has(s.PlayerID, component.CTagAlive)
}

// PlayerHP returns the player's current and maximum hit points.
func (s *Session) PlayerHP() (int, int) {
	f := s.World.Get(s.PlayerID, component.CFighter).(component.Fighter)
	return f.HP, f.MaxHP
}

// Inventory returns a copy of the player's inventory slots.
func (s *Session) Inventory() []component.InventoryItem {
	c := s.World.Get(s.PlayerID, component.CInventory)
	if c == nil {
		return nil
	}
	items := c.(component.Inventory).Items
	out := make([]component.InventoryItem, len(items))
	copy(out, items)
	return out
}

// RefreshFOV recomputes the player's field of view when the player has moved
// since the last computation, and marks every lit tile explored.
func (s *Session) RefreshFOV() {
	pos := s.PlayerPosition()
	if s.fovValid && pos == s.fovAt {
		return
	}
	s.fov = system.ComputeFOV(s.Map, pos.X, pos.Y, s.cfg.FOV.TorchRadius, s.cfg.FOV.LightWalls)
	s.fov.Each(s.Map.Explore)
	s.fovAt = pos
	s.fovValid = true
}

// FOV returns the player's current field of view.
func (s *Session) FOV() *system.Visibility { return s.fov }

// IsVisible reports whether (x, y) is in the player's field of view.
func (s *Session) IsVisible(x, y int) bool { return s.fov.IsVisible(x, y) }

// NamesAt lists, comma separated, the names of entities standing on (x, y).
// Tiles outside the field of view report nothing.
func (s *Session) NamesAt(x, y int) string {
	if !s.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, id := range s.World.Query(component.CPosition, component.CNamed) {
		p := s.World.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			names = append(names, s.World.Get(id, component.CNamed).(component.Named).Name)
		}
	}
	return strings.Join(names, ", ")
}

// Step resolves one player action and, when it cost a turn, lets every
// monster act in creation order.
func (s *Session) Step(ctx context.Context, action Action) PlayerAction {
	_, span := telemetry.Tracer("game").Start(ctx, "turn")
	defer span.End()

	result := s.resolvePlayer(action)
	span.SetAttributes(attribute.String("turn.result", result.String()))
	if result != TookTurn {
		return result
	}

	s.runLog.TurnsPlayed++
	s.RefreshFOV()
	if s.PlayerAlive() {
		hp, _ := s.PlayerHP()
		system.ProcessAI(s.aiContext())
		after, _ := s.PlayerHP()
		s.runLog.DamageTaken += hp - max(after, 0)
	}
	if !s.PlayerAlive() {
		s.runLog.Died = true
	}
	return result
}

func (s *Session) resolvePlayer(action Action) PlayerAction {
	if action == ActionExit {
		return Exit
	}
	if !s.PlayerAlive() {
		return DidNotTakeTurn
	}

	switch {
	case action == ActionWait:
		return TookTurn
	case action == ActionPickup:
		s.PickUp()
		return DidNotTakeTurn
	case isMove(action):
		dx, dy := actionToDelta(action)
		pos := s.PlayerPosition()
		target := s.fighterAt(pos.X+dx, pos.Y+dy)
		before := 0
		if target != ecs.NilEntity {
			before = s.World.Get(target, component.CFighter).(component.Fighter).HP
		}
		res, hit := system.PlayerMoveOrAttack(s.World, s.Map, s.Log, s.PlayerID, dx, dy)
		if res == system.MoveAttack && hit != s.PlayerID {
			after := 0
			if c := s.World.Get(hit, component.CFighter); c != nil {
				after = c.(component.Fighter).HP
			}
			if before > after {
				s.runLog.DamageDealt += before - max(after, 0)
			}
		}
		return TookTurn
	}
	return DidNotTakeTurn
}

func (s *Session) fighterAt(x, y int) ecs.EntityID {
	for _, id := range s.World.Query(component.CFighter, component.CPosition) {
		p := s.World.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// PickUp takes the first item on the player's tile. Picking up never costs
// a turn.
func (s *Session) PickUp() bool {
	if !s.PlayerAlive() {
		return false
	}
	pos := s.PlayerPosition()
	item := system.ItemAt(s.World, pos.X, pos.Y)
	if item == ecs.NilEntity {
		return false
	}
	if !system.PickUp(s.World, s.Log, s.PlayerID, item) {
		return false
	}
	s.runLog.ItemsPickedUp++
	return true
}

// UseItem applies the inventory slot at index. Using an item never costs a
// turn. Panics when index is outside the inventory.
func (s *Session) UseItem(index int) system.UseResult {
	inv := s.Inventory()
	if index < 0 || index >= len(inv) {
		panic("game: inventory index out of range")
	}
	name := inv[index].Name
	res := system.UseItem(s.itemContext(), s.PlayerID, index)
	if res == system.UsedUp {
		s.runLog.ItemsUsed[name]++
	}
	s.entry.WithFields(logrus.Fields{"item": name, "result": res.String()}).Debug("item used")
	return res
}

// Stats returns the running statistics, with kills counted from the monsters
// that are no longer fighting.
func (s *Session) Stats() RunLog {
	r := s.runLog
	r.EnemiesKilled = s.monsters - len(s.World.Query(component.CFighter, component.CAI))
	r.Died = !s.PlayerAlive()
	return r
}

// Finish logs the run summary once.
func (s *Session) Finish() RunLog {
	r := s.Stats()
	if !s.finished {
		s.finished = true
		emitRunLog(s.entry, r)
	}
	return r
}

func (s *Session) aiContext() system.AIContext {
	return system.AIContext{
		World:    s.World,
		Map:      s.Map,
		Log:      s.Log,
		Rand:     s.rng,
		FOV:      s.fov,
		PlayerID: s.PlayerID,
	}
}

func (s *Session) itemContext() system.ItemContext {
	r := s.cfg.Rules
	return system.ItemContext{
		World: s.World,
		Log:   s.Log,
		FOV:   s.fov,
		Rules: system.ItemRules{
			HealAmount:      r.HealAmount,
			LightningDamage: r.LightningDamage,
			LightningRange:  r.LightningRange,
			ConfuseRange:    r.ConfuseRange,
			ConfuseTurns:    r.ConfuseTurns,
		},
	}
}
