// Package msglog is the in-game message log shown under the map.
package msglog

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Message is one colored line of game text.
type Message struct {
	Text  string
	Color tcell.Color
}

// Log is an append-only list of messages, oldest first.
type Log struct {
	messages []Message
}

// New returns an empty log.
func New() *Log { return &Log{} }

// Add appends a message.
func (l *Log) Add(text string, color tcell.Color) {
	l.messages = append(l.messages, Message{Text: text, Color: color})
}

// Addf formats and appends a message.
func (l *Log) Addf(color tcell.Color, format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), color)
}

// Len returns the number of messages logged so far.
func (l *Log) Len() int { return len(l.messages) }

// All returns every message. The slice must not be modified.
func (l *Log) All() []Message { return l.messages }

// Tail returns at most the n most recent messages, oldest first.
func (l *Log) Tail(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n >= len(l.messages) {
		return l.messages
	}
	return l.messages[len(l.messages)-n:]
}

// Last returns the newest message and whether there is one.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
