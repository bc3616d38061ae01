package game

import (
	"encoding/json"

	"github.com/lox/headsup/internal/deck"
)

// PlayerSnapshot is one seat's state as visible to a particular viewer.
// Hole cards are omitted for opponents until showdown.
type PlayerSnapshot struct {
	Name       string               `json:"name"`
	Stack      int                  `json:"stack"`
	Position   string               `json:"position"`
	CurrentBet int                  `json:"current_bet"`
	TotalBet   int                  `json:"total_bet"`
	HoleCards  []string             `json:"hole_cards,omitempty"`
	IsActive   bool                 `json:"is_active"`
	IsAllIn    bool                 `json:"is_all_in"`
	HasFolded  bool                 `json:"has_folded"`
	Actions    []PlayerActionRecord `json:"actions"`
}

// Snapshot is an immutable view of the hand from one player's perspective.
// It is safe to hand to untrusted action sources; mutating it has no effect
// on the round.
type Snapshot struct {
	Street     Street           `json:"street"`
	Board      []string         `json:"board"`
	Pot        int              `json:"pot"`
	CurrentBet int              `json:"current_bet"`
	SmallBlind int              `json:"small_blind"`
	BigBlind   int              `json:"big_blind"`
	Viewer     string           `json:"viewer"`
	Players    []PlayerSnapshot `json:"players"`
	History    []ActionRecord   `json:"history"`

	// Set once the hand has been settled.
	Complete    bool     `json:"is_complete"`
	Winners     []string `json:"winners,omitempty"`
	WinningHand string   `json:"winning_hand,omitempty"`
}

// SnapshotFor captures the round from the viewer's perspective. Pass nil to
// take an omniscient snapshot with every hand revealed, as at showdown.
func (r *Round) SnapshotFor(viewer *Player) Snapshot {
	snap := Snapshot{
		Street:     r.Street,
		Board:      cardStrings(r.Board),
		Pot:        r.Pot,
		CurrentBet: r.CurrentBet,
		SmallBlind: r.smallBlind,
		BigBlind:   r.bigBlind,
		History:    append([]ActionRecord{}, r.History...),
	}
	if viewer != nil {
		snap.Viewer = viewer.Name
	}

	if r.Result != nil {
		snap.Complete = true
		snap.Winners = append([]string{}, r.Result.Winners...)
		if len(r.Result.Showdown) > 0 {
			for _, sh := range r.Result.Showdown {
				if sh.Name == r.Result.Winners[0] {
					snap.WinningHand = sh.Evaluation.Name
				}
			}
		}
	}

	for _, p := range r.Players {
		ps := PlayerSnapshot{
			Name:       p.Name,
			Stack:      p.Stack,
			Position:   p.Position.String(),
			CurrentBet: p.CurrentBet,
			TotalBet:   p.TotalBet,
			IsActive:   p.IsActive,
			IsAllIn:    p.IsAllIn,
			HasFolded:  p.HasFolded,
			Actions:    append([]PlayerActionRecord{}, p.Actions...),
		}
		// Hole cards are revealed to their owner, to omniscient viewers,
		// and for everyone still in at a completed showdown.
		revealed := viewer == nil || p == viewer ||
			(snap.Complete && !r.Result.WinByFold && p.IsActive)
		if revealed {
			ps.HoleCards = cardStrings(p.HoleCards)
		}
		snap.Players = append(snap.Players, ps)
	}
	return snap
}

// Player returns the named seat's snapshot, or nil if absent.
func (s Snapshot) Player(name string) *PlayerSnapshot {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return &s.Players[i]
		}
	}
	return nil
}

// JSON renders the snapshot for logging or wire use.
func (s Snapshot) JSON() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func cardStrings(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
