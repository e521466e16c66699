package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hijack-gaming/holdem-engine/logging"
	"github.com/hijack-gaming/holdem-engine/poker"
	"github.com/hijack-gaming/holdem-engine/util"
)

var handLogger = log.With().Str("logger_name", "game::hand").Logger()

// Engine runs the hand state machine. It holds no table state of its
// own: each Advance call executes exactly one stage against the given
// snapshot and returns. Callers must serialize Advance calls per table.
type Engine struct {
	logger  *zerolog.Logger
	decider Decider
}

func NewEngine(logger *zerolog.Logger, decider Decider) *Engine {
	if logger == nil {
		logger = &handLogger
	}
	if decider == nil {
		decider = CallingDecider{}
	}
	return &Engine{logger: logger, decider: decider}
}

// Advance executes the logic of the snapshot's current stage and moves
// the stage pointer forward. An unknown stage value is logged and
// leaves the snapshot untouched; it never fails the driver.
func (e *Engine) Advance(g *Game, players []*Player) error {
	switch g.Stage {
	case GamePrep:
		return e.gamePrep(g, players)
	case SetupDealer:
		return e.setupDealer(g, players)
	case SetupSmallBlind:
		return e.setupSmallBlind(g, players)
	case SetupBigBlind:
		return e.setupBigBlind(g, players)
	case DealCards:
		return e.dealCards(g, players)
	case PreFlopBettingRound, FlopBettingRound, TurnBettingRound, RiverBettingRound:
		return e.bettingRound(g, players)
	case DealFlop:
		return e.dealCommunity(g, players, 3, FlopBettingRound)
	case DealTurn:
		return e.dealCommunity(g, players, 1, TurnBettingRound)
	case DealRiver:
		return e.dealCommunity(g, players, 1, RiverBettingRound)
	case AfterRiverBettingRound:
		g.Stage = FindWinners
		return nil
	case FindWinners:
		return e.findWinners(g, players)
	case PayWinners:
		return e.payWinners(g, players)
	case RecordStatsAndNewHand:
		return e.recordStatsAndNewHand(g, players)
	case AddOnsAndCharging:
		return e.addOnsAndCharging(g, players)
	default:
		e.logger.Warn().
			Str(logging.TableIDKey, g.TableID).
			Str(logging.StageKey, g.Stage.String()).
			Msg("Unknown hand stage, snapshot left unchanged")
		return nil
	}
}

// gamePrep resets all per-hand state and builds a fresh shuffled deck.
func (e *Engine) gamePrep(g *Game, players []*Player) error {
	for _, p := range players {
		if p.Status != PlayerStatusSittingOut && p.Status != PlayerStatusBusted {
			p.Status = PlayerStatusActive
		}
		p.Bet = 0
		p.TotalBet = 0
		p.Action = ActionNone
		p.Cards = nil
		p.HandRank = ""
		p.Winnings = 0
	}

	g.Pot = 0
	g.CurrentBet = 0
	g.CommunityCards = nil
	g.SidePots = nil
	g.Winners = nil
	g.Move = 0
	g.Deck = poker.NewDeck().Cards()
	g.Stage = SetupDealer

	return nil
}

// setupDealer rotates the button to the next eligible seat. A table
// with fewer than two in-hand players cannot run a hand: short-circuit
// to the terminal stage instead of failing.
func (e *Engine) setupDealer(g *Game, players []*Player) error {
	if len(PlayersInHand(players)) < 2 {
		e.logger.Warn().
			Str(logging.TableIDKey, g.TableID).
			Msg("Not enough players to start hand")
		g.Stage = RecordStatsAndNewHand
		return nil
	}

	g.DealerSeat = NextSeat(players, g.DealerSeat, g.MaxSeats)
	g.Stage = SetupSmallBlind
	return nil
}

// setupSmallBlind posts the small blind. Heads-up, the dealer posts it;
// otherwise the next eligible seat after the dealer does.
func (e *Engine) setupSmallBlind(g *Game, players []*Player) error {
	sbSeat := NextSeat(players, g.DealerSeat, g.MaxSeats)
	if len(PlayersInHand(players)) == 2 {
		sbSeat = g.DealerSeat
	}
	g.SmallBlindSeat = sbSeat

	if p := PlayerBySeat(players, sbSeat); p != nil {
		postBlind(p, g.SmallBlind)
	}

	g.Stage = SetupBigBlind
	return nil
}

func (e *Engine) setupBigBlind(g *Game, players []*Player) error {
	bbSeat := NextSeat(players, g.SmallBlindSeat, g.MaxSeats)
	g.BigBlindSeat = bbSeat

	if p := PlayerBySeat(players, bbSeat); p != nil {
		postBlind(p, g.BigBlind)
	}

	g.CurrentBet = g.BigBlind
	g.Stage = DealCards
	return nil
}

// postBlind moves a forced wager into the round bet. A post that
// exhausts the stack puts the player all-in.
func postBlind(p *Player, blind float64) {
	amount := blind
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack = util.ToMoney(p.Stack - amount)
	p.Bet = util.ToMoney(p.Bet + amount)
	p.TotalBet = util.ToMoney(p.TotalBet + amount)
	if p.Stack == 0 {
		p.Status = PlayerStatusAllIn
	}
}

func (e *Engine) dealCards(g *Game, players []*Player) error {
	for _, p := range PlayersInHand(players) {
		cards, err := poker.Deal(&g.Deck, 2)
		if err != nil {
			return errors.Wrap(err, "dealing hole cards")
		}
		p.Cards = cards
	}

	g.Move = NextSeat(players, g.BigBlindSeat, g.MaxSeats)
	g.Stage = PreFlopBettingRound
	return nil
}

// bettingRound resolves one street of betting using the configured
// decider, then sweeps the bets into the pot and advances the street.
// When at most one player remains in the hand the round jumps straight
// to the showdown; when at most one can still act there is nobody left
// to prompt, so the bets are collected and the street advances without
// consulting the decider.
func (e *Engine) bettingRound(g *Game, players []*Player) error {
	if len(PlayersInHand(players)) <= 1 {
		CollectBets(g, players)
		g.Stage = FindWinners
		return nil
	}

	if ActingCount(players) <= 1 {
		CollectBets(g, players)
		g.Stage = nextStreet[g.Stage]
		return nil
	}

	// A pass asks each pending player once; raises reopen the action,
	// so keep passing until the round settles. Every pass either
	// settles the round, grows the current bet or removes a player
	// from the action, so the loop is bounded by the deepest stack.
	for !IsRoundComplete(players, g.CurrentBet) {
		for _, p := range actionOrder(g, players) {
			if p.Status != PlayerStatusActive {
				continue
			}
			if p.Action != ActionNone && util.NearlyEqual(p.Bet, g.CurrentBet) {
				continue
			}

			action, amount := e.decider.Decide(g, p, ValidActions(g, p))
			if err := ProcessAction(g, p, action, amount); err != nil {
				return err
			}

			if len(PlayersInHand(players)) <= 1 {
				CollectBets(g, players)
				g.Stage = FindWinners
				return nil
			}
		}
	}

	CollectBets(g, players)
	g.Stage = nextStreet[g.Stage]
	return nil
}

// actionOrder lists players by seat starting from the seat expected to
// act, wrapping around the table.
func actionOrder(g *Game, players []*Player) []*Player {
	start := g.Move
	if start == NoSeat || PlayerBySeat(players, start) == nil {
		start = NextSeat(players, g.DealerSeat, g.MaxSeats)
	}
	ordered := make([]*Player, 0, len(players))
	for i := 0; i < g.MaxSeats; i++ {
		seat := ((start-1+i)%g.MaxSeats + 1)
		if p := PlayerBySeat(players, seat); p != nil {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func (e *Engine) dealCommunity(g *Game, players []*Player, count int, next HandStep) error {
	cards, err := poker.Deal(&g.Deck, count)
	if err != nil {
		return errors.Wrap(err, "dealing community cards")
	}
	g.CommunityCards = append(g.CommunityCards, cards...)

	g.Move = NextSeat(players, g.DealerSeat, g.MaxSeats)
	g.Stage = next
	return nil
}

func (e *Engine) findWinners(g *Game, players []*Player) error {
	_, winners := evaluateShowdown(g, players)
	g.Winners = winners

	for _, w := range winners {
		e.logger.Info().
			Str(logging.TableIDKey, g.TableID).
			Int(logging.SeatNumKey, w.Seat).
			Str(logging.PlayerIDKey, w.PlayerID).
			Msg("Hand winner determined")
	}

	g.Stage = PayWinners
	return nil
}

// payWinners distributes the pot. With side pots, each pot goes to its
// eligible winners; otherwise the whole pot splits evenly. Remainder
// cents go to the earliest winner clockwise from the button.
func (e *Engine) payWinners(g *Game, players []*Player) error {
	if len(g.Winners) == 0 {
		return errors.New("pay winners: no winners recorded for hand")
	}
	winnerSeats := make([]int, len(g.Winners))
	for i, w := range g.Winners {
		winnerSeats[i] = w.Seat
	}

	pots := CalculatePots(players)

	var payouts map[int]float64
	if len(pots) == 0 {
		payouts = make(map[int]float64, len(winnerSeats))
		ordered := clockwiseFrom(winnerSeats, g.DealerSeat, g.MaxSeats)
		shares := make([]float64, len(ordered))
		util.SplitCents(g.Pot, len(ordered), shares)
		for i, seat := range ordered {
			payouts[seat] = shares[i]
		}
	} else {
		var err error
		payouts, err = DistributePots(pots, winnerSeats, g.DealerSeat, g.MaxSeats)
		if err != nil {
			return errors.Wrap(err, "pay winners")
		}
	}

	for seat, amount := range payouts {
		if p := PlayerBySeat(players, seat); p != nil {
			p.Stack = util.ToMoney(p.Stack + amount)
			p.Winnings = amount
		}
	}

	g.SidePots = pots
	g.Pot = 0
	g.Stage = RecordStatsAndNewHand
	return nil
}

// recordStatsAndNewHand records the outcome of the hand. Players left
// without chips are marked busted.
func (e *Engine) recordStatsAndNewHand(g *Game, players []*Player) error {
	for _, p := range players {
		if p.Stack == 0 && p.Status != PlayerStatusSittingOut {
			p.Status = PlayerStatusBusted
		}
	}

	e.logger.Info().
		Str(logging.TableIDKey, g.TableID).
		Uint32(logging.HandNumKey, g.HandNum).
		Interface("winners", g.Winners).
		Msg("Hand complete")

	g.Stage = AddOnsAndCharging
	return nil
}

// addOnsAndCharging is the terminal stage of one hand: pending chip
// purchases are applied and the hand is marked complete. A busted
// player who bought back in rejoins the next hand. The driver starts
// the next hand by re-entering GamePrep with an incremented hand
// number.
func (e *Engine) addOnsAndCharging(g *Game, players []*Player) error {
	for _, p := range players {
		if p.PendingAddOn <= 0 {
			continue
		}
		p.Stack = util.ToMoney(p.Stack + p.PendingAddOn)
		e.logger.Info().
			Str(logging.TableIDKey, g.TableID).
			Int(logging.SeatNumKey, p.Seat).
			Float64("addOn", p.PendingAddOn).
			Msg("Add-on applied")
		p.PendingAddOn = 0
		if p.Status == PlayerStatusBusted && p.Stack > 0 {
			p.Status = PlayerStatusActive
		}
	}

	g.Status = GameStatusCompleted
	return nil
}
