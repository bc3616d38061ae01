package game

import (
	"fmt"
	"strings"

	"github.com/lox/headsup/internal/deck"
)

// Position is a heads-up table position. The dealer posts the small blind.
type Position int

const (
	NoPosition Position = iota
	SmallBlindPosition
	BigBlindPosition
)

func (p Position) String() string {
	switch p {
	case SmallBlindPosition:
		return "SB"
	case BigBlindPosition:
		return "BB"
	default:
		return ""
	}
}

// PlayerActionRecord is one entry in a player's per-hand action log.
type PlayerActionRecord struct {
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

// Player holds one seat's per-hand state. A Player lives for the whole
// game; hand-scoped fields are cleared by ResetForNewHand while the stack
// carries over.
type Player struct {
	Name      string
	Stack     int
	Position  Position
	HoleCards []deck.Card

	CurrentBet int // committed this street, reset on street advance
	TotalBet   int // committed this hand, monotonic
	IsActive   bool
	IsAllIn    bool
	HasFolded  bool
	Actions    []PlayerActionRecord

	// actedThisStreet is true once the player has taken a non-blind action
	// this street. A raise by an opponent clears it so the player must act
	// again.
	actedThisStreet bool
	// voluntaryThisStreet is true when the player's street contribution
	// includes a non-blind chip action, which affects the pot-limit maximum
	// (blind postings never reduce it).
	voluntaryThisStreet bool
}

// NewPlayer creates a seated player with a starting stack.
func NewPlayer(name string, stack int) *Player {
	return &Player{
		Name:     name,
		Stack:    stack,
		IsActive: true,
	}
}

// DealHoleCards assigns the player's private cards.
func (p *Player) DealHoleCards(cards []deck.Card) {
	p.HoleCards = cards
}

// ResetForNewHand clears all hand-scoped state. The stack is preserved.
func (p *Player) ResetForNewHand() {
	p.HoleCards = nil
	p.Position = NoPosition
	p.IsActive = true
	p.IsAllIn = false
	p.HasFolded = false
	p.CurrentBet = 0
	p.TotalBet = 0
	p.Actions = nil
	p.actedThisStreet = false
	p.voluntaryThisStreet = false
}

// resetForNewStreet zeroes the street-scoped bet state, preserving TotalBet.
func (p *Player) resetForNewStreet() {
	p.CurrentBet = 0
	p.actedThisStreet = false
	p.voluntaryThisStreet = false
}

// placeBet commits chips so the player's street total becomes target. When
// the needed delta meets or exceeds the stack the bet is capped at the full
// stack and the player is all-in; the actual new CurrentBet is then below
// the requested target. Returns the amount actually added, which is what
// callers must add to the pot.
func (p *Player) placeBet(target int) int {
	delta := target - p.CurrentBet
	if delta >= p.Stack {
		delta = p.Stack
		target = p.CurrentBet + delta
		p.IsAllIn = true
	}
	p.Stack -= delta
	p.CurrentBet = target
	p.TotalBet += delta
	return delta
}

// Fold removes the player from the hand.
func (p *Player) Fold() {
	p.IsActive = false
	p.HasFolded = true
	p.recordAction(Fold, 0)
}

// Check records a check.
func (p *Player) Check() {
	p.recordAction(Check, 0)
}

// Call matches the outstanding bet, going all-in if the stack cannot cover
// it. Returns the amount added to the pot.
func (p *Player) Call(target int) int {
	added := p.placeBet(target)
	p.voluntaryThisStreet = true
	p.recordAction(Call, p.CurrentBet)
	return added
}

// Bet commits chips to a new street total. It records a bet when opening
// (no outstanding bet) and a raise otherwise. Returns the amount added to
// the pot.
func (p *Player) Bet(target, outstanding int) int {
	added := p.placeBet(target)
	p.voluntaryThisStreet = true
	kind := Bet
	if outstanding > 0 {
		kind = Raise
	}
	p.recordAction(kind, p.CurrentBet)
	return added
}

// PostBlind commits a forced blind. Blinds do not count as having acted and
// do not mark a voluntary contribution.
func (p *Player) PostBlind(amount int, kind Action) int {
	added := p.placeBet(amount)
	p.recordAction(kind, p.CurrentBet)
	return added
}

// recordAction appends to the player's action log. Recording is a
// guaranteed side effect of every action; there is no fallback path.
func (p *Player) recordAction(action Action, amount int) {
	p.Actions = append(p.Actions, PlayerActionRecord{Action: action, Amount: amount})
}

// WinPot credits winnings to the stack.
func (p *Player) WinPot(amount int) {
	p.Stack += amount
}

// CanAct reports whether the player can take a turn: still contesting the
// pot and not all-in. This predicate gates turn eligibility everywhere.
func (p *Player) CanAct() bool {
	return p.IsActive && !p.IsAllIn
}

// HoleCardsString renders the hole cards, or "?? ??" when hidden.
func (p *Player) HoleCardsString(hidden bool) string {
	if hidden {
		return "?? ??"
	}
	return deck.FormatCards(p.HoleCards)
}

func (p *Player) String() string {
	status := ""
	switch {
	case p.HasFolded:
		status = " [folded]"
	case p.IsAllIn:
		status = " [all-in]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s", p.Name)
	if p.Position != NoPosition {
		fmt.Fprintf(&b, " (%s)", p.Position)
	}
	fmt.Fprintf(&b, ": %d chips, bet %d%s", p.Stack, p.CurrentBet, status)
	return b.String()
}
