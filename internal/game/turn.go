package game

// PlayerAction is what resolving one input meant for the turn.
type PlayerAction uint8

const (
	TookTurn       PlayerAction = iota // monsters act next
	DidNotTakeTurn                     // UI-only or impossible action
	Exit                               // leave the game
)

func (a PlayerAction) String() string {
	switch a {
	case TookTurn:
		return "took-turn"
	case DidNotTakeTurn:
		return "did-not-take-turn"
	case Exit:
		return "exit"
	}
	return "unknown"
}
