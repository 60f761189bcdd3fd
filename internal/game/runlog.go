package game

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	TurnsPlayed   int
	EnemiesKilled int
	ItemsPickedUp int
	ItemsUsed     map[string]int // item name → use count
	DamageDealt   int
	DamageTaken   int
	Died          bool
}

func newRunLog() RunLog {
	return RunLog{ItemsUsed: make(map[string]int)}
}

// TotalItemsUsed sums ItemsUsed.
func (r RunLog) TotalItemsUsed() int {
	n := 0
	for _, c := range r.ItemsUsed {
		n += c
	}
	return n
}

// itemUseLines lists item usage sorted by count, then name.
func (r RunLog) itemUseLines() []itemUse {
	out := make([]itemUse, 0, len(r.ItemsUsed))
	for name, n := range r.ItemsUsed {
		out = append(out, itemUse{name: name, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

type itemUse struct {
	name  string
	count int
}

// emitRunLog writes the completed run as one structured log line.
func emitRunLog(entry *logrus.Entry, r RunLog) {
	entry.WithFields(logrus.Fields{
		"turns":        r.TurnsPlayed,
		"kills":        r.EnemiesKilled,
		"picked_up":    r.ItemsPickedUp,
		"items_used":   r.TotalItemsUsed(),
		"damage_dealt": r.DamageDealt,
		"damage_taken": r.DamageTaken,
		"died":         r.Died,
	}).Info("run finished")
}
