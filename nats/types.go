package nats

import (
	"github.com/hijack-gaming/holdem-engine/game"
	"github.com/hijack-gaming/holdem-engine/poker"
)

// TableUpdate is the broadcast payload sent after each processed
// stage. The deck and hole cards are never included.
type TableUpdate struct {
	TableID        string         `json:"tableId"`
	HandNum        uint32         `json:"handNum"`
	Stage          int            `json:"stage"`
	StageName      string         `json:"stageName"`
	Pot            float64        `json:"pot"`
	CurrentBet     float64        `json:"currentBet"`
	CommunityCards []string       `json:"communityCards"`
	DealerSeat     int            `json:"dealerSeat"`
	Move           int            `json:"move"`
	Winners        []game.Winner  `json:"winners"`
	Players        []PlayerUpdate `json:"players"`
}

type PlayerUpdate struct {
	PlayerID string  `json:"playerId"`
	Seat     int     `json:"seat"`
	Stack    float64 `json:"stack"`
	Bet      float64 `json:"bet"`
	Status   string  `json:"status"`
	Action   string  `json:"action"`
	HandRank string  `json:"handRank"`
	Winnings float64 `json:"winnings"`
}

func newTableUpdate(g *game.Game, players []*game.Player) TableUpdate {
	update := TableUpdate{
		TableID:        g.TableID,
		HandNum:        g.HandNum,
		Stage:          int(g.Stage),
		StageName:      g.Stage.String(),
		Pot:            g.Pot,
		CurrentBet:     g.CurrentBet,
		CommunityCards: poker.CardTokens(g.CommunityCards),
		DealerSeat:     g.DealerSeat,
		Move:           g.Move,
		Winners:        g.Winners,
		Players:        make([]PlayerUpdate, 0, len(players)),
	}
	for _, p := range players {
		update.Players = append(update.Players, PlayerUpdate{
			PlayerID: p.PlayerID,
			Seat:     p.Seat,
			Stack:    p.Stack,
			Bet:      p.Bet,
			Status:   p.Status.String(),
			Action:   p.Action.String(),
			HandRank: p.HandRank,
			Winnings: p.Winnings,
		})
	}
	return update
}
