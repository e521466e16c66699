package game

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/hijack-gaming/holdem-engine/poker"
)

const (
	GameStatusInProgress = "in_progress"
	GameStatusCompleted  = "completed"
)

// Game is the per-hand table snapshot. The engine mutates it stage by
// stage; the driver persists it between stages. MaxSeats and the blinds
// are table configuration and stay constant for the hand.
type Game struct {
	TableID        string       `json:"tableId"`
	HandNum        uint32       `json:"handNum"`
	Stage          HandStep     `json:"stage"`
	Status         string       `json:"status"`
	DealerSeat     int          `json:"dealerSeat"`
	SmallBlindSeat int          `json:"smallBlindSeat"`
	BigBlindSeat   int          `json:"bigBlindSeat"`
	CommunityCards []poker.Card `json:"communityCards"`
	Pot            float64      `json:"pot"`
	CurrentBet     float64      `json:"currentBet"`
	SidePots       []Pot        `json:"sidePots"`
	Deck           []poker.Card `json:"deck"`
	Winners        []Winner     `json:"winners"`
	Move           int          `json:"move"`
	MaxSeats       int          `json:"maxSeats"`
	SmallBlind     float64      `json:"smallBlind"`
	BigBlind       float64      `json:"bigBlind"`
}

// Player is the per-seat hand state. Seat is the stable key within a
// table; Bet is the wager of the current betting round, TotalBet the
// cumulative wager of the whole hand.
type Player struct {
	PlayerID string       `json:"playerId"`
	Name     string       `json:"name"`
	Seat     int          `json:"seat"`
	Stack    float64      `json:"stack"`
	Bet      float64      `json:"bet"`
	TotalBet float64      `json:"totalBet"`
	Status   PlayerStatus `json:"status"`
	Action   PlayerAction `json:"action"`
	Cards    []poker.Card `json:"cards"`
	HandRank string       `json:"handRank"`
	Winnings float64      `json:"winnings"`
	// PendingAddOn is a chip purchase requested mid-hand. It is
	// applied between hands, never during one.
	PendingAddOn float64 `json:"pendingAddOn"`
}

// Pot is a derived view over the players' total bets: an amount and the
// seats eligible to win it. Rebuilt whenever pots are computed, never
// mutated in place.
type Pot struct {
	Amount        float64 `json:"amount"`
	EligibleSeats []int   `json:"eligibleSeats"`
}

type Winner struct {
	Seat     int    `json:"seat"`
	PlayerID string `json:"playerId"`
}

// Snapshot bundles the game row and its player rows, the unit the
// driver fetches, advances and persists.
type Snapshot struct {
	Game    *Game     `json:"game"`
	Players []*Player `json:"players"`
}

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() (*Snapshot, error) {
	data, err := snapshotJSON.Marshal(s)
	if err != nil {
		return nil, err
	}
	clone := &Snapshot{}
	if err := snapshotJSON.Unmarshal(data, clone); err != nil {
		return nil, err
	}
	return clone, nil
}
