package game

// The betting rule engine. All functions here are stateless: legal actions
// and raise bounds are computed purely from the players and the table
// figures, so repeated calls with unchanged state give identical results.
//
// Amounts use total-bet-to semantics throughout: a raise amount is the new
// total the player will have committed this street, not the increment.

// LegalActionsFor computes what the acting player may do given the
// outstanding bet to match, the pot, and the big blind.
func LegalActionsFor(p *Player, players []*Player, outstanding, pot, bigBlind int) LegalActions {
	if !p.CanAct() {
		return LegalActions{Fold: true}
	}

	toCall := outstanding - p.CurrentBet
	canCheck := toCall == 0
	// A call with partial coverage is still legal; it goes all-in for the
	// remaining stack.
	canCall := toCall > 0

	la := LegalActions{
		// Folding is only legal when there is a bet to face.
		Fold:  !canCheck,
		Check: canCheck,
		Call:  canCall,
	}

	minRaise, maxRaise := raiseBounds(p, players, outstanding, pot, bigBlind)
	if maxRaise >= minRaise && maxRaise > outstanding && p.Stack > toCall {
		la.Raise = &RaiseBounds{Min: minRaise, Max: maxRaise}
	}
	return la
}

// raiseBounds returns the inclusive pot-limit raise window in total-bet-to
// amounts.
//
// With no outstanding bet the window is [big blind, pot]. Facing a bet, the
// minimum is outstanding + big blind (a "raise" equal to a call would be
// redundant) and the maximum follows the pot-limit formula
//
//	max = 3*outstanding + (pot - outstanding)
//
// i.e. three times the outstanding bet plus the pot as it stood before that
// bet. If the acting player's street contribution includes an earlier
// voluntary bet of their own, that contribution is already inside the pot
// figure and is subtracted; blind postings never are.
//
// The maximum is then capped at the player's committable chips and at the
// smallest committable chips among opponents still in the hand: heads-up
// there are no side pots, so a bet cannot exceed what the opponent can
// match. If capping pushes the maximum below the minimum, the minimum
// collapses to it, leaving a single-value all-in window.
func raiseBounds(p *Player, players []*Player, outstanding, pot, bigBlind int) (int, int) {
	var minRaise, maxRaise int
	if outstanding == 0 {
		minRaise = bigBlind
		maxRaise = pot
	} else {
		minRaise = outstanding + bigBlind
		maxRaise = 3*outstanding + (pot - outstanding)
		if p.voluntaryThisStreet && p.CurrentBet > 0 && p.CurrentBet != outstanding {
			maxRaise -= p.CurrentBet
		}
	}

	if own := p.Stack + p.CurrentBet; maxRaise > own {
		maxRaise = own
	}
	for _, opp := range players {
		if opp == p || !opp.IsActive {
			continue
		}
		if limit := opp.Stack + opp.CurrentBet; maxRaise > limit {
			maxRaise = limit
		}
	}

	if minRaise > maxRaise {
		minRaise = maxRaise
	}
	return minRaise, maxRaise
}

// ValidateAction checks an action/amount pair against the legal actions,
// returning an IllegalActionError with a named reason on rejection.
func ValidateAction(action Action, amount int, legal LegalActions) error {
	switch action {
	case Fold:
		if !legal.Fold {
			return &IllegalActionError{Reason: NoBetToFace, Action: action}
		}
	case Check:
		if !legal.Check {
			return &IllegalActionError{Reason: MustCallOrFold, Action: action}
		}
	case Call:
		if !legal.Call {
			return &IllegalActionError{Reason: CannotCall, Action: action}
		}
	case Bet, Raise:
		if legal.Raise == nil {
			return &IllegalActionError{Reason: CannotRaise, Action: action, Amount: amount}
		}
		if amount < legal.Raise.Min {
			return &IllegalActionError{Reason: RaiseTooSmall, Action: action, Amount: amount, Bounds: legal.Raise}
		}
		if amount > legal.Raise.Max {
			return &IllegalActionError{Reason: RaiseTooLarge, Action: action, Amount: amount, Bounds: legal.Raise}
		}
	default:
		return &IllegalActionError{Reason: UnknownAction, Action: action, Amount: amount}
	}
	return nil
}

// ApplyAction applies a validated action to the player and returns the
// amount added to the pot. Raises do not update the round's outstanding bet
// here; the round reads the player's actual CurrentBet afterwards, which
// matters when an all-in cap reduced the requested amount.
func ApplyAction(p *Player, action Action, amount, outstanding int) (int, error) {
	switch action {
	case Fold:
		p.Fold()
		return 0, nil
	case Check:
		p.Check()
		return 0, nil
	case Call:
		return p.Call(outstanding), nil
	case Bet, Raise:
		return p.Bet(amount, outstanding), nil
	default:
		return 0, &IllegalActionError{Reason: UnknownAction, Action: action, Amount: amount}
	}
}
