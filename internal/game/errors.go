package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when a new hand is requested after a player has
// busted. Recoverable only by resetting the game.
var ErrGameOver = errors.New("game over")

// Reason identifies why an action was rejected.
type Reason int

const (
	UnknownAction Reason = iota
	NoBetToFace
	MustCallOrFold
	CannotCall
	CannotRaise
	RaiseTooSmall
	RaiseTooLarge
)

func (r Reason) String() string {
	switch r {
	case NoBetToFace:
		return "NoBetToFace"
	case MustCallOrFold:
		return "MustCallOrFold"
	case CannotCall:
		return "CannotCall"
	case CannotRaise:
		return "CannotRaise"
	case RaiseTooSmall:
		return "RaiseTooSmall"
	case RaiseTooLarge:
		return "RaiseTooLarge"
	default:
		return "UnknownAction"
	}
}

// IllegalActionError rejects an action/amount pair. The round never guesses
// a fallback; the action source is expected to retry with a legal action.
type IllegalActionError struct {
	Reason Reason
	Action Action
	Amount int
	Bounds *RaiseBounds
}

func (e *IllegalActionError) Error() string {
	switch e.Reason {
	case NoBetToFace:
		return "cannot fold: no bet to face, check instead"
	case MustCallOrFold:
		return "cannot check: must call or fold"
	case CannotCall:
		return "cannot call: no outstanding bet"
	case CannotRaise:
		return "cannot raise"
	case RaiseTooSmall:
		return fmt.Sprintf("raise to %d too small, minimum %d", e.Amount, e.Bounds.Min)
	case RaiseTooLarge:
		return fmt.Sprintf("raise to %d too large, maximum %d", e.Amount, e.Bounds.Max)
	default:
		return fmt.Sprintf("unknown action %d", int(e.Action))
	}
}
