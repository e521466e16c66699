package game

import (
	"github.com/hijack-gaming/holdem-engine/util"
)

// ProcessAction applies one betting action to the player and game.
// Illegal actions return InvalidActionError without mutating anything.
func ProcessAction(g *Game, p *Player, action PlayerAction, amount float64) error {
	switch action {
	case ActionFold:
		p.Status = PlayerStatusFolded
		p.Action = ActionFold

	case ActionCheck:
		if !util.NearlyEqual(p.Bet, g.CurrentBet) {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "bet does not match current bet"}
		}
		p.Action = ActionCheck

	case ActionCall:
		if util.GreaterOrNearlyEqual(p.Bet, g.CurrentBet) {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "nothing to call"}
		}
		callAmount := g.CurrentBet - p.Bet
		if callAmount > p.Stack {
			callAmount = p.Stack
		}
		moveChips(p, callAmount)
		p.Action = ActionCall
		if p.Stack == 0 {
			p.Status = PlayerStatusAllIn
			p.Action = ActionAllIn
		}

	case ActionBet:
		if g.CurrentBet > 0 {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "a bet is already open, raise instead"}
		}
		if amount <= 0 {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "bet amount must be positive"}
		}
		betAmount := amount
		if betAmount > p.Stack {
			betAmount = p.Stack
		}
		moveChips(p, betAmount)
		p.Action = ActionBet
		g.CurrentBet = p.Bet
		if p.Stack == 0 {
			p.Status = PlayerStatusAllIn
			p.Action = ActionAllIn
		}

	case ActionRaise:
		if g.CurrentBet == 0 {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "no bet to raise"}
		}
		if amount <= 0 {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "raise amount must be positive"}
		}
		raiseAmount := amount
		if raiseAmount > p.Stack {
			raiseAmount = p.Stack
		}
		shortAllIn := util.NearlyEqual(raiseAmount, p.Stack)
		if !shortAllIn && util.GreaterOrNearlyEqual(g.CurrentBet, p.Bet+raiseAmount) {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "raise does not exceed current bet"}
		}
		moveChips(p, raiseAmount)
		p.Action = ActionRaise
		if util.Greater(p.Bet, g.CurrentBet) {
			g.CurrentBet = p.Bet
		}
		if p.Stack == 0 {
			p.Status = PlayerStatusAllIn
			p.Action = ActionAllIn
		}

	case ActionAllIn:
		if p.Stack <= 0 {
			return InvalidActionError{Seat: p.Seat, Action: action, Msg: "no chips to commit"}
		}
		moveChips(p, p.Stack)
		p.Status = PlayerStatusAllIn
		p.Action = ActionAllIn
		if util.Greater(p.Bet, g.CurrentBet) {
			g.CurrentBet = p.Bet
		}

	default:
		return InvalidActionError{Seat: p.Seat, Action: action, Msg: "unrecognized action"}
	}

	return nil
}

// moveChips transfers chips from the stack into the round and hand
// wagers, rounding everything to cents.
func moveChips(p *Player, amount float64) {
	p.Stack = util.ToMoney(p.Stack - amount)
	p.Bet = util.ToMoney(p.Bet + amount)
	p.TotalBet = util.ToMoney(p.TotalBet + amount)
}

// ValidActions derives the legal action set for the player. Fold is
// always legal for a player still in the hand.
func ValidActions(g *Game, p *Player) []PlayerAction {
	actions := []PlayerAction{ActionFold}

	if util.NearlyEqual(p.Bet, g.CurrentBet) {
		actions = append(actions, ActionCheck)
	}

	if util.Greater(g.CurrentBet, p.Bet) && p.Stack > 0 {
		actions = append(actions, ActionCall)
	}

	if g.CurrentBet == 0 && p.Stack > 0 {
		actions = append(actions, ActionBet)
	}

	if g.CurrentBet > 0 && util.Greater(p.Stack, g.CurrentBet-p.Bet) {
		actions = append(actions, ActionRaise)
	}

	if p.Stack > 0 {
		actions = append(actions, ActionAllIn)
	}

	return actions
}

// MinRaise is 2x the current bet, or the big blind when nothing is
// open yet.
func MinRaise(currentBet float64, bigBlind float64) float64 {
	if currentBet > 0 {
		return util.ToMoney(currentBet * 2)
	}
	return bigBlind
}

// IsRoundComplete reports whether every Active player has acted since
// the last bet collection and matched the current bet.
func IsRoundComplete(players []*Player, currentBet float64) bool {
	active := 0
	for _, p := range players {
		if p.Status != PlayerStatusActive {
			continue
		}
		active++
		if p.Action == ActionNone || !util.NearlyEqual(p.Bet, currentBet) {
			return false
		}
	}
	return true
}

// CollectBets sweeps every player's round bet into the pot, clears the
// per-round action markers and resets the current bet. Called exactly
// once per betting round before the stage advances.
func CollectBets(g *Game, players []*Player) float64 {
	collected := 0.0
	for _, p := range players {
		collected = util.ToMoney(collected + p.Bet)
		p.Bet = 0
		p.Action = ActionNone
	}
	g.Pot = util.ToMoney(g.Pot + collected)
	g.CurrentBet = 0
	return collected
}
