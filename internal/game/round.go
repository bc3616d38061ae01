package game

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
)

// Street is a stage of a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ActionRecord is one action in the hand's chronological log.
type ActionRecord struct {
	Street Street `json:"street"`
	Player string `json:"player"`
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

// ActionSource supplies a player's decision when the round needs one. The
// snapshot is taken from the acting player's point of view and the returned
// action must be one of the legal actions or the hand aborts with an
// IllegalActionError. Interactive sources are expected to validate and
// re-prompt before returning.
type ActionSource interface {
	Act(ctx context.Context, snap Snapshot, legal LegalActions) (Action, int, error)
}

// ActionSourceFunc adapts a function to an ActionSource.
type ActionSourceFunc func(ctx context.Context, snap Snapshot, legal LegalActions) (Action, int, error)

func (f ActionSourceFunc) Act(ctx context.Context, snap Snapshot, legal LegalActions) (Action, int, error) {
	return f(ctx, snap, legal)
}

// Round runs a single hand from blinds to payout. Players are held in seat
// order; dealerIndex names the seat posting the small blind.
type Round struct {
	Players     []*Player
	Board       []deck.Card
	Pot         int
	CurrentBet  int
	Street      Street
	History     []ActionRecord
	Result      *HandResult
	dealerIndex int
	smallBlind  int
	bigBlind    int
	deck        *deck.Deck
	logger      *log.Logger
}

// NewRound sets up a hand between two seated players.
func NewRound(players []*Player, dealerIndex int, d *deck.Deck, smallBlind, bigBlind int, logger *log.Logger) *Round {
	return &Round{
		Players:     players,
		dealerIndex: dealerIndex,
		smallBlind:  smallBlind,
		bigBlind:    bigBlind,
		deck:        d,
		logger:      logger,
	}
}

// StartHand resets per-hand player state, shuffles, posts the blinds and
// deals the hole cards. The dealer posts the small blind heads-up.
func (r *Round) StartHand() error {
	r.deck.Reset()
	r.deck.Shuffle()
	r.Board = nil
	r.Pot = 0
	r.Street = Preflop
	r.History = nil
	r.Result = nil

	sb := r.Players[r.dealerIndex]
	bb := r.Players[1-r.dealerIndex]
	for _, p := range r.Players {
		p.ResetForNewHand()
	}
	sb.Position = SmallBlindPosition
	bb.Position = BigBlindPosition

	r.Pot += sb.PostBlind(r.smallBlind, PostSmallBlind)
	r.record(sb, PostSmallBlind, sb.CurrentBet)
	r.Pot += bb.PostBlind(r.bigBlind, PostBigBlind)
	r.record(bb, PostBigBlind, bb.CurrentBet)

	// A short stack can post all-in for less than the blind, so the
	// outstanding bet is whatever was actually committed.
	r.CurrentBet = sb.CurrentBet
	if bb.CurrentBet > r.CurrentBet {
		r.CurrentBet = bb.CurrentBet
	}

	for _, p := range r.actingOrder() {
		cards, err := r.deck.Deal(2)
		if err != nil {
			return err
		}
		p.DealHoleCards(cards)
	}

	r.logger.Debug("hand started",
		"dealer", sb.Name,
		"small_blind", r.smallBlind,
		"big_blind", r.bigBlind)
	return nil
}

// actingOrder returns the players in the order they act this street. The
// dealer acts first preflop and last on every later street.
func (r *Round) actingOrder() []*Player {
	sb := r.Players[r.dealerIndex]
	bb := r.Players[1-r.dealerIndex]
	if r.Street == Preflop {
		return []*Player{sb, bb}
	}
	return []*Player{bb, sb}
}

// NextToAct returns the player who owes a decision, or nil when the betting
// round is complete. A player owes a decision when they can still act and
// either have not matched the outstanding bet or have not voluntarily acted
// this street; the big blind's forced post does not count as acting, which
// gives the option check.
func (r *Round) NextToAct() *Player {
	for _, p := range r.actingOrder() {
		if !p.CanAct() {
			continue
		}
		if p.CurrentBet < r.CurrentBet || !p.actedThisStreet {
			return p
		}
	}
	return nil
}

// BettingComplete reports whether no player owes a decision.
func (r *Round) BettingComplete() bool {
	return r.NextToAct() == nil
}

// LegalActions computes the acting player's options under pot-limit rules.
func (r *Round) LegalActions(p *Player) LegalActions {
	return LegalActionsFor(p, r.Players, r.CurrentBet, r.Pot, r.bigBlind)
}

// Apply validates and applies one action for the acting player, updating the
// pot, the outstanding bet and the action history. A raise reopens the
// betting for every other player still able to act.
func (r *Round) Apply(p *Player, action Action, amount int) error {
	legal := r.LegalActions(p)
	if err := ValidateAction(action, amount, legal); err != nil {
		return err
	}

	added, err := ApplyAction(p, action, amount, r.CurrentBet)
	if err != nil {
		return err
	}
	r.Pot += added
	p.actedThisStreet = true

	// An all-in cap can land below the requested amount, so read the
	// player's actual street total rather than trusting the request.
	if p.CurrentBet > r.CurrentBet {
		r.CurrentBet = p.CurrentBet
		for _, opp := range r.Players {
			if opp != p && opp.CanAct() {
				opp.actedThisStreet = false
			}
		}
	}

	recorded := p.Actions[len(p.Actions)-1]
	r.record(p, recorded.Action, recorded.Amount)
	r.logger.Debug("action",
		"street", r.Street,
		"player", p.Name,
		"action", recorded.Action,
		"amount", recorded.Amount,
		"pot", r.Pot)
	return nil
}

// RunBettingRound prompts action sources until the street's betting is
// complete or only one player remains. Sources are aligned with the Players
// slice by index. An illegal action from a source aborts the hand.
func (r *Round) RunBettingRound(ctx context.Context, sources []ActionSource) error {
	for {
		if r.countActive() < 2 {
			return nil
		}
		p := r.NextToAct()
		if p == nil {
			return nil
		}
		src := sources[r.indexOf(p)]
		legal := r.LegalActions(p)
		action, amount, err := src.Act(ctx, r.SnapshotFor(p), legal)
		if err != nil {
			return fmt.Errorf("action source for %s: %w", p.Name, err)
		}
		if err := r.Apply(p, action, amount); err != nil {
			return err
		}
	}
}

// AdvanceStreet deals the next street's cards and resets the street betting
// state. Calling past the river moves to showdown without dealing.
func (r *Round) AdvanceStreet() error {
	var n int
	switch r.Street {
	case Preflop:
		n = 3
	case Flop, Turn:
		n = 1
	case River:
		r.Street = Showdown
		return nil
	default:
		return nil
	}

	cards, err := r.deck.Deal(n)
	if err != nil {
		return err
	}
	r.Board = append(r.Board, cards...)
	r.Street++
	r.CurrentBet = 0
	for _, p := range r.Players {
		p.resetForNewStreet()
	}
	r.logger.Debug("street dealt", "street", r.Street, "board", deck.FormatCards(r.Board))
	return nil
}

// RunOutBoard deals all remaining streets with no betting, used when a
// player is all-in and the rest of the hand plays out automatically.
func (r *Round) RunOutBoard() error {
	for r.Street < River {
		if err := r.AdvanceStreet(); err != nil {
			return err
		}
	}
	r.Street = Showdown
	return nil
}

// NeedsRunout reports whether the hand should be dealt out with no further
// betting: both players still contest the pot but at least one is all-in.
func (r *Round) NeedsRunout() bool {
	if r.countActive() < 2 {
		return false
	}
	for _, p := range r.Players {
		if p.IsActive && p.IsAllIn {
			return true
		}
	}
	return false
}

// ShowdownHand is one player's revealed hand at showdown.
type ShowdownHand struct {
	Name       string               `json:"name"`
	HoleCards  []deck.Card          `json:"hole_cards"`
	Evaluation evaluator.Evaluation `json:"evaluation"`
}

// HandResult reports how a hand ended and where the chips went.
type HandResult struct {
	Winners   []string       `json:"winners"`
	WinByFold bool           `json:"win_by_fold"`
	Pot       int            `json:"pot"`
	Payouts   map[string]int `json:"payouts"`
	Board     []deck.Card    `json:"board"`
	Showdown  []ShowdownHand `json:"showdown,omitempty"`
}

// DetermineWinner settles the pot. With one player left the pot is theirs
// without a showdown; otherwise the seven-card hands are compared. A split
// pot divides evenly with any odd chip going to the winner seated earliest
// in the postflop acting order.
func (r *Round) DetermineWinner() (*HandResult, error) {
	result := &HandResult{
		Pot:     r.Pot,
		Payouts: map[string]int{},
		Board:   append([]deck.Card{}, r.Board...),
	}

	active := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.IsActive {
			active = append(active, p)
		}
	}

	if len(active) == 1 {
		winner := active[0]
		winner.WinPot(r.Pot)
		result.Winners = []string{winner.Name}
		result.WinByFold = true
		result.Payouts[winner.Name] = r.Pot
		r.Result = result
		r.logger.Debug("hand won uncontested", "winner", winner.Name, "pot", r.Pot)
		return result, nil
	}

	hands := map[string][]deck.Card{}
	for _, p := range active {
		cards := append(append([]deck.Card{}, p.HoleCards...), r.Board...)
		ev, err := evaluator.Evaluate(cards)
		if err != nil {
			return nil, err
		}
		hands[p.Name] = cards
		result.Showdown = append(result.Showdown, ShowdownHand{
			Name:       p.Name,
			HoleCards:  append([]deck.Card{}, p.HoleCards...),
			Evaluation: ev,
		})
	}

	winners, err := evaluator.FindWinners(hands)
	if err != nil {
		return nil, err
	}
	result.Winners = winners

	if len(winners) == 1 {
		for _, p := range active {
			if p.Name == winners[0] {
				p.WinPot(r.Pot)
				result.Payouts[p.Name] = r.Pot
			}
		}
		r.Result = result
		r.logger.Debug("hand won at showdown", "winner", winners[0], "pot", r.Pot)
		return result, nil
	}

	// Split pot. Pay in postflop acting order so the odd chip lands on the
	// out-of-position player.
	share := r.Pot / len(winners)
	odd := r.Pot % len(winners)
	isWinner := map[string]bool{}
	for _, name := range winners {
		isWinner[name] = true
	}
	bb := r.Players[1-r.dealerIndex]
	sb := r.Players[r.dealerIndex]
	for _, p := range []*Player{bb, sb} {
		if !isWinner[p.Name] {
			continue
		}
		amount := share
		if odd > 0 {
			amount++
			odd--
		}
		p.WinPot(amount)
		result.Payouts[p.Name] = amount
	}
	r.Result = result
	r.logger.Debug("split pot", "winners", winners, "pot", r.Pot)
	return result, nil
}

func (r *Round) countActive() int {
	n := 0
	for _, p := range r.Players {
		if p.IsActive {
			n++
		}
	}
	return n
}

func (r *Round) indexOf(p *Player) int {
	for i, q := range r.Players {
		if q == p {
			return i
		}
	}
	return -1
}

func (r *Round) record(p *Player, action Action, amount int) {
	r.History = append(r.History, ActionRecord{
		Street: r.Street,
		Player: p.Name,
		Action: action,
		Amount: amount,
	})
}

// sortedNames is a small helper for deterministic output in summaries.
func sortedNames(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
