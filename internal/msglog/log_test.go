package msglog

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddKeepsOrderAndColor(t *testing.T) {
	l := New()
	l.Add("first", tcell.ColorRed)
	l.Addf(tcell.ColorWhite, "%s attacks %s for %d hit points.", "orc", "player", 3)

	require.Equal(t, 2, l.Len())
	assert.Equal(t, Message{Text: "first", Color: tcell.ColorRed}, l.All()[0])
	assert.Equal(t, "orc attacks player for 3 hit points.", l.All()[1].Text)

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, tcell.ColorWhite, last.Color)
}

func TestTail(t *testing.T) {
	l := New()
	assert.Empty(t, l.Tail(3))
	_, ok := l.Last()
	assert.False(t, ok)

	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, tcell.ColorWhite)
	}
	tail := l.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "c", tail[0].Text)
	assert.Equal(t, "d", tail[1].Text)
	assert.Len(t, l.Tail(10), 4)
	assert.Nil(t, l.Tail(0))
}
