package game

import (
	"fmt"
	"strings"
)

// Action is a player action, including the blind postings that appear in
// hand histories.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	PostSmallBlind
	PostBigBlind
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case PostSmallBlind:
		return "small_blind"
	case PostBigBlind:
		return "big_blind"
	default:
		return "unknown"
	}
}

// MarshalText renders actions as their names in JSON snapshots.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAction maps user input to an action. "bet" and "raise" are the same
// action under total-bet-to semantics.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "check", "k":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "bet", "b":
		return Bet, nil
	case "raise", "r":
		return Raise, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// RaiseBounds is the inclusive legal window for a raise, in total-bet-to
// amounts (the new total committed this street, not the increment).
type RaiseBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LegalActions describes exactly what the acting player may do. Raise is
// nil when raising is not available.
type LegalActions struct {
	Fold  bool         `json:"fold"`
	Check bool         `json:"check"`
	Call  bool         `json:"call"`
	Raise *RaiseBounds `json:"raise,omitempty"`
}

// CanRaise reports whether a raise window exists.
func (la LegalActions) CanRaise() bool {
	return la.Raise != nil
}
