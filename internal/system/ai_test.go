package system

import (
	"math/rand"
	"testing"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/ecs"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/msglog"
)

func aiContext(w *ecs.World, gmap *gamemap.GameMap, player ecs.EntityID, seed int64) AIContext {
	p := position(w, player)
	return AIContext{
		World:    w,
		Map:      gmap,
		Log:      msglog.New(),
		Rand:     rand.New(rand.NewSource(seed)),
		FOV:      ComputeFOV(gmap, p.X, p.Y, 10, true),
		PlayerID: player,
	}
}

func TestBasicAIApproachesVisiblePlayer(t *testing.T) {
	w, player := newWorld(5, 5)
	gmap := openMap(20, 20)
	orc := addMonster(w, "orc", 9, 5, 10, 0, 3)

	TakeTurn(aiContext(w, gmap, player, 1), orc)

	if p := position(w, orc); p.X != 8 || p.Y != 5 {
		t.Fatalf("orc should step toward the player, at (%d,%d)", p.X, p.Y)
	}
	if fighter(w, player).HP != 30 {
		t.Fatal("orc must not attack from range")
	}
}

func TestBasicAIAttacksWhenAdjacent(t *testing.T) {
	w, player := newWorld(5, 5)
	gmap := openMap(20, 20)
	orc := addMonster(w, "orc", 6, 6, 10, 0, 3)

	TakeTurn(aiContext(w, gmap, player, 1), orc)

	// Diagonal neighbours are closer than 2: power 3 - defense 2 = 1.
	if hp := fighter(w, player).HP; hp != 29 {
		t.Fatalf("expected player hp 29, got %d", hp)
	}
	if p := position(w, orc); p.X != 6 || p.Y != 6 {
		t.Fatal("attacking orc should not move")
	}
}

func TestBasicAIIdlesOutOfSight(t *testing.T) {
	w, player := newWorld(2, 2)
	gmap := openMap(30, 30)
	orc := addMonster(w, "orc", 25, 25, 10, 0, 3)

	TakeTurn(aiContext(w, gmap, player, 1), orc)

	if p := position(w, orc); p.X != 25 || p.Y != 25 {
		t.Fatalf("unseen orc should not move, at (%d,%d)", p.X, p.Y)
	}
}

func TestBasicAIDoesNotAttackDeadPlayer(t *testing.T) {
	w, player := newWorld(5, 5)
	gmap := openMap(20, 20)
	f := fighter(w, player)
	f.HP = 0
	w.Add(player, f)
	orc := addMonster(w, "orc", 6, 5, 10, 0, 3)

	ctx := aiContext(w, gmap, player, 1)
	TakeTurn(ctx, orc)
	if ctx.Log.Len() != 0 {
		t.Fatalf("no attack expected on a dead player, log: %v", ctx.Log.All())
	}
}

func TestConfusionLastsTurnsPlusOne(t *testing.T) {
	const turns = 3
	w, player := newWorld(2, 2)
	gmap := openMap(30, 30)
	orc := addMonster(w, "orc", 20, 20, 10, 0, 3)
	w.Add(orc, component.AI{Behavior: component.BehaviorBasic, Confusion: &component.Confusion{TurnsLeft: turns}})

	ctx := aiContext(w, gmap, player, 7)
	for i := 0; i < turns+1; i++ {
		TakeTurn(ctx, orc)
		ai := w.Get(orc, component.CAI).(component.AI)
		if !ai.Confused() {
			t.Fatalf("step %d: should still be confused", i)
		}
		if ai.Confusion.TurnsLeft != turns-1-i {
			t.Fatalf("step %d: TurnsLeft=%d, want %d", i, ai.Confusion.TurnsLeft, turns-1-i)
		}
	}

	TakeTurn(ctx, orc)
	ai := w.Get(orc, component.CAI).(component.AI)
	if ai.Confused() || ai.Behavior != component.BehaviorBasic {
		t.Fatalf("expected basic AI restored, got %+v", ai)
	}
	last, _ := ctx.Log.Last()
	if last.Text != "The orc is no longer confused!" {
		t.Errorf("unexpected message %q", last.Text)
	}
}

func TestConfusedMonsterStaysNearby(t *testing.T) {
	w, player := newWorld(2, 2)
	gmap := openMap(30, 30)
	orc := addMonster(w, "orc", 15, 15, 10, 0, 3)
	w.Add(orc, component.AI{Confusion: &component.Confusion{TurnsLeft: 10}})

	ctx := aiContext(w, gmap, player, 3)
	prev := position(w, orc)
	for n := 0; n < 10; n++ {
		TakeTurn(ctx, orc)
		p := position(w, orc)
		if abs(p.X-prev.X) > 1 || abs(p.Y-prev.Y) > 1 {
			t.Fatalf("confused step too long: %v → %v", prev, p)
		}
		prev = p
	}
}

func TestProcessAIRunsInCreationOrder(t *testing.T) {
	// The second orc can only advance into the tile the first one vacates.
	w, player := newWorld(5, 5)
	gmap := openMap(20, 20)
	first := addMonster(w, "first", 7, 5, 10, 0, 3)
	second := addMonster(w, "second", 8, 5, 10, 0, 3)

	ProcessAI(aiContext(w, gmap, player, 1))

	if p := position(w, first); p.X != 6 || p.Y != 5 {
		t.Fatalf("first orc should reach (6,5), at (%d,%d)", p.X, p.Y)
	}
	if p := position(w, second); p.X != 7 || p.Y != 5 {
		t.Fatalf("second orc should follow into (7,5), at (%d,%d)", p.X, p.Y)
	}
}

func TestProcessAISkipsCorpses(t *testing.T) {
	w, player := newWorld(5, 5)
	gmap := openMap(20, 20)
	orc := addMonster(w, "orc", 6, 5, 10, 0, 3)
	TakeDamage(w, msglog.New(), orc, 100)

	ProcessAI(aiContext(w, gmap, player, 1))
	if w.Has(orc, component.CAI) {
		t.Fatal("corpse must not regain AI")
	}
	if fighter(w, player).HP != 30 {
		t.Fatal("corpse must not attack")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
