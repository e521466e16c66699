package game

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijack-gaming/holdem-engine/poker"
)

func testSnapshot(tableID string) *Snapshot {
	return &Snapshot{
		Game: &Game{
			TableID:    tableID,
			HandNum:    3,
			Stage:      FlopBettingRound,
			Status:     GameStatusInProgress,
			MaxSeats:   9,
			SmallBlind: 1,
			BigBlind:   2,
			Pot:        6,
			CommunityCards: []poker.Card{
				poker.NewCard("AC"), poker.NewCard("QS"), poker.NewCard("10D"),
			},
		},
		Players: []*Player{
			{PlayerID: "a", Seat: 1, Stack: 98, TotalBet: 2, Status: PlayerStatusActive,
				Cards: []poker.Card{poker.NewCard("AS"), poker.NewCard("KS")}},
			{PlayerID: "b", Seat: 5, Stack: 98, TotalBet: 2, Status: PlayerStatusAllIn},
		},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTableStore()
	saved := testSnapshot("t1")

	require.NoError(t, store.Save(ctx, saved))
	fetched, err := store.Fetch(ctx, "t1")
	require.NoError(t, err)

	assert.Equal(t, saved.Game, fetched.Game)
	assert.Equal(t, saved.Players, fetched.Players)
}

// A fetched snapshot must not alias the stored one: mutating it and
// discarding it leaves the persisted state untouched.
func TestMemoryStoreNoAliasing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTableStore()
	require.NoError(t, store.Save(ctx, testSnapshot("t1")))

	first, err := store.Fetch(ctx, "t1")
	require.NoError(t, err)
	first.Game.Pot = 999
	first.Players[0].Stack = 0

	second, err := store.Fetch(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, second.Game.Pot)
	assert.Equal(t, 98.0, second.Players[0].Stack)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryTableStore()
	_, err := store.Fetch(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, ErrTableNotFound, errors.Cause(err))
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTableStore()
	require.NoError(t, store.Save(ctx, testSnapshot("t1")))

	require.NoError(t, store.Remove(ctx, "t1"))
	_, err := store.Fetch(ctx, "t1")
	require.Error(t, err)
	assert.Equal(t, ErrTableNotFound, errors.Cause(err))

	require.NoError(t, store.Remove(ctx, "t1"), "removing a missing table is not an error")
}
