package game

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestTotalItemsUsed(t *testing.T) {
	r := newRunLog()
	if r.TotalItemsUsed() != 0 {
		t.Fatalf("empty run log used %d items", r.TotalItemsUsed())
	}
	r.ItemsUsed["healing potion"] = 3
	r.ItemsUsed["scroll of confusion"] = 1
	if got := r.TotalItemsUsed(); got != 4 {
		t.Errorf("TotalItemsUsed = %d; want 4", got)
	}
}

func TestItemUseLinesSorted(t *testing.T) {
	r := newRunLog()
	r.ItemsUsed["scroll of lightning bolt"] = 1
	r.ItemsUsed["healing potion"] = 3
	r.ItemsUsed["scroll of confusion"] = 1

	lines := r.itemUseLines()
	want := []string{"healing potion", "scroll of confusion", "scroll of lightning bolt"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines; want %d", len(lines), len(want))
	}
	for i, name := range want {
		if lines[i].name != name {
			t.Errorf("line %d = %q; want %q", i, lines[i].name, name)
		}
	}
}

func TestEmitRunLogFields(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newRunLog()
	r.TurnsPlayed = 12
	r.EnemiesKilled = 2
	r.Died = true
	r.ItemsUsed["healing potion"] = 2

	emitRunLog(logrus.NewEntry(log), r)

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry written")
	}
	if e.Message != "run finished" {
		t.Errorf("message = %q", e.Message)
	}
	checks := map[string]any{"turns": 12, "kills": 2, "items_used": 2, "died": true}
	for k, want := range checks {
		if e.Data[k] != want {
			t.Errorf("%s = %v; want %v", k, e.Data[k], want)
		}
	}
}
