package system

import (
	"testing"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/msglog"
)

func TestAttackDamageIsPowerMinusDefense(t *testing.T) {
	// Player power 5 against defense 2 → 3 damage per blow.
	w, player := newWorld(1, 1)
	log := msglog.New()
	target := addMonster(w, "orc", 2, 1, 10, 2, 3)

	res := Attack(w, log, player, target)
	if res.Damage != 3 || res.Killed {
		t.Fatalf("expected 3 damage and no kill, got %+v", res)
	}
	if hp := fighter(w, target).HP; hp != 7 {
		t.Fatalf("expected hp 7, got %d", hp)
	}
	last, _ := log.Last()
	if last.Text != "player attacks orc for 3 hit points." {
		t.Errorf("unexpected message %q", last.Text)
	}
}

func TestAttackWithNoEffect(t *testing.T) {
	w, player := newWorld(1, 1)
	log := msglog.New()
	target := addMonster(w, "golem", 2, 1, 10, 5, 3)

	res := Attack(w, log, player, target)
	if res.Damage != 0 {
		t.Fatalf("expected no damage, got %d", res.Damage)
	}
	if hp := fighter(w, target).HP; hp != 10 {
		t.Fatalf("hp must be unchanged, got %d", hp)
	}
	last, _ := log.Last()
	if last.Text != "player attacks golem, but it has no effect!" {
		t.Errorf("unexpected message %q", last.Text)
	}
}

func TestMonsterAttacksPlayerToDeathOnce(t *testing.T) {
	// Attacker power 5 vs player defense 2 on a 6 hp player: 6 → 3 → 0.
	w, player := newWorld(1, 1)
	log := msglog.New()
	f := fighter(w, player)
	f.HP = 6
	w.Add(player, f)
	brute := addMonster(w, "brute", 2, 1, 10, 0, 5)

	if res := Attack(w, log, brute, player); res.Killed || fighter(w, player).HP != 3 {
		t.Fatalf("first blow: %+v hp=%d", res, fighter(w, player).HP)
	}
	res := Attack(w, log, brute, player)
	if !res.Killed || fighter(w, player).HP != 0 {
		t.Fatalf("second blow should kill: %+v hp=%d", res, fighter(w, player).HP)
	}
	if w.Has(player, component.CTagAlive) {
		t.Fatal("player should no longer be alive")
	}

	deaths := func() int {
		n := 0
		for _, m := range log.All() {
			if m.Text == "You died!" {
				n++
			}
		}
		return n
	}
	if deaths() != 1 {
		t.Fatalf("expected exactly one death message, got %d", deaths())
	}
	// Further damage never re-runs the death routine.
	if Attack(w, log, brute, player).Killed {
		t.Fatal("a dead player cannot be killed again")
	}
	if deaths() != 1 {
		t.Fatalf("death routine ran again")
	}

	r := w.Get(player, component.CRenderable).(component.Renderable)
	if r.Glyph != '%' || r.FGColor != assets.ColorDarkRed {
		t.Errorf("dead player should render as a dark red %%, got %q", r.Glyph)
	}
	if !w.Alive(player) || !w.Has(player, component.CFighter) {
		t.Error("the player entity stays in place with its fighter")
	}
}

func TestMonsterDeathLeavesRemains(t *testing.T) {
	w, player := newWorld(1, 1)
	log := msglog.New()
	orc := addMonster(w, "orc", 2, 1, 3, 0, 3)

	res := Attack(w, log, player, orc)
	if !res.Killed {
		t.Fatal("5 power vs 3 hp should kill")
	}
	if !w.Alive(orc) {
		t.Fatal("corpses stay in the world")
	}
	if w.Has(orc, component.CFighter) || w.Has(orc, component.CAI) || w.Has(orc, component.CTagBlocking) {
		t.Fatal("remains must lose fighter, AI and blocking")
	}
	if name := NameOf(w, orc); name != "remains of orc" {
		t.Errorf("name = %q", name)
	}
	r := w.Get(orc, component.CRenderable).(component.Renderable)
	if r.Glyph != '%' || r.RenderOrder != component.RenderCorpse {
		t.Errorf("unexpected corpse renderable %+v", r)
	}
	msgs := log.All()
	if got := msgs[len(msgs)-1]; got.Text != "orc is dead!" || got.Color != assets.ColorOrange {
		t.Errorf("unexpected death message %+v", got)
	}
}

func TestAttackSelfPanics(t *testing.T) {
	w, player := newWorld(1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("attacking oneself must panic")
		}
	}()
	Attack(w, msglog.New(), player, player)
}

func TestHealClampsToMax(t *testing.T) {
	w, player := newWorld(1, 1)
	f := fighter(w, player)
	f.HP = 28
	w.Add(player, f)

	Heal(w, player, 4)
	if hp := fighter(w, player).HP; hp != 30 {
		t.Fatalf("expected hp clamped to 30, got %d", hp)
	}
}
