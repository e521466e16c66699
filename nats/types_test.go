package nats

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijack-gaming/holdem-engine/game"
	"github.com/hijack-gaming/holdem-engine/poker"
)

func TestTableUpdateSubject(t *testing.T) {
	assert.Equal(t, "table.t1.update", TableUpdateSubject("t1"))
}

// The broadcast payload must never leak the deck or hole cards.
func TestNewTableUpdateRedaction(t *testing.T) {
	g := &game.Game{
		TableID:    "t1",
		HandNum:    2,
		Stage:      game.FlopBettingRound,
		Pot:        6,
		DealerSeat: 1,
		Move:       5,
		Deck:       []poker.Card{poker.NewCard("9C"), poker.NewCard("4H")},
		CommunityCards: []poker.Card{
			poker.NewCard("AC"), poker.NewCard("QS"), poker.NewCard("10D"),
		},
		Winners: []game.Winner{{Seat: 5, PlayerID: "b"}},
	}
	players := []*game.Player{
		{
			PlayerID: "a",
			Seat:     1,
			Stack:    98,
			Status:   game.PlayerStatusActive,
			Action:   game.ActionCall,
			Cards:    []poker.Card{poker.NewCard("AS"), poker.NewCard("KS")},
		},
	}

	update := newTableUpdate(g, players)
	assert.Equal(t, "t1", update.TableID)
	assert.Equal(t, "FLOP_BETTING_ROUND", update.StageName)
	assert.Equal(t, []string{"AC", "QS", "10D"}, update.CommunityCards)
	require.Len(t, update.Players, 1)
	assert.Equal(t, "ACTIVE", update.Players[0].Status)
	assert.Equal(t, "call", update.Players[0].Action)

	data, err := jsoniter.Marshal(update)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "AS", "hole cards must not be broadcast")
	assert.NotContains(t, string(data), "9C", "the deck must not be broadcast")
}
