package game

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSeat(t *testing.T) {
	players := []*Player{
		{Seat: 2, Status: PlayerStatusActive},
		{Seat: 5, Status: PlayerStatusActive},
		{Seat: 7, Status: PlayerStatusFolded},
		{Seat: 9, Status: PlayerStatusActive},
	}

	assert.Equal(t, 2, NextSeat(players, 9, 9), "wraps around past the highest seat")
	assert.Equal(t, 5, NextSeat(players, 2, 9))
	assert.Equal(t, 9, NextSeat(players, 5, 9), "skips folded seat 7")
	assert.Equal(t, 2, NextSeat(players, 1, 9))
}

func TestNextSeatNoneEligible(t *testing.T) {
	players := []*Player{
		{Seat: 1, Status: PlayerStatusAllIn},
		{Seat: 2, Status: PlayerStatusFolded},
	}
	assert.Equal(t, NoSeat, NextSeat(players, 1, 9))
	assert.Equal(t, NoSeat, NextSeat(nil, 1, 0))
}

func TestPlayersInHand(t *testing.T) {
	players := []*Player{
		{Seat: 8, Status: PlayerStatusActive},
		{Seat: 3, Status: PlayerStatusAllIn},
		{Seat: 5, Status: PlayerStatusFolded},
		{Seat: 1, Status: PlayerStatusSittingOut},
	}

	inHand := PlayersInHand(players)
	require.Len(t, inHand, 2)
	assert.Equal(t, 3, inHand[0].Seat, "in-hand players are seat ordered")
	assert.Equal(t, 8, inHand[1].Seat)
}

func TestActingCount(t *testing.T) {
	players := []*Player{
		{Seat: 1, Status: PlayerStatusActive},
		{Seat: 2, Status: PlayerStatusAllIn},
		{Seat: 3, Status: PlayerStatusFolded},
	}
	assert.Equal(t, 1, ActingCount(players))
}

func TestPlayerStatusJSON(t *testing.T) {
	p := Player{Seat: 1, Status: PlayerStatusAllIn, Action: ActionRaise}
	data, err := jsoniter.Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"ALL_IN"`)
	assert.Contains(t, string(data), `"action":"raise"`)

	var decoded Player
	require.NoError(t, jsoniter.Unmarshal(data, &decoded))
	assert.Equal(t, PlayerStatusAllIn, decoded.Status)
	assert.Equal(t, ActionRaise, decoded.Action)
}
