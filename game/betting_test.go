package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBettingGame(currentBet float64) *Game {
	return &Game{
		TableID:    "t1",
		MaxSeats:   9,
		BigBlind:   2,
		CurrentBet: currentBet,
	}
}

func TestProcessActionFold(t *testing.T) {
	g := newBettingGame(2)
	p := &Player{Seat: 1, Stack: 100, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionFold, 0))
	assert.Equal(t, PlayerStatusFolded, p.Status)
	assert.Equal(t, ActionFold, p.Action)
	assert.Equal(t, 100.0, p.Stack)
}

func TestProcessActionCheck(t *testing.T) {
	g := newBettingGame(2)
	p := &Player{Seat: 1, Stack: 100, Bet: 2, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionCheck, 0))
	assert.Equal(t, ActionCheck, p.Action)
}

func TestProcessActionCheckBehindBetInvalid(t *testing.T) {
	g := newBettingGame(2)
	p := &Player{Seat: 1, Stack: 100, Status: PlayerStatusActive}

	err := ProcessAction(g, p, ActionCheck, 0)
	require.Error(t, err)
	assert.IsType(t, InvalidActionError{}, err)
	assert.Equal(t, ActionNone, p.Action, "invalid action must not mutate")
	assert.Equal(t, 100.0, p.Stack)
}

func TestProcessActionCall(t *testing.T) {
	g := newBettingGame(10)
	p := &Player{Seat: 1, Stack: 100, Bet: 2, TotalBet: 2, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionCall, 0))
	assert.Equal(t, 92.0, p.Stack)
	assert.Equal(t, 10.0, p.Bet)
	assert.Equal(t, 10.0, p.TotalBet)
	assert.Equal(t, ActionCall, p.Action)
}

func TestProcessActionCallNothingToCall(t *testing.T) {
	g := newBettingGame(2)
	p := &Player{Seat: 1, Stack: 100, Bet: 2, Status: PlayerStatusActive}

	err := ProcessAction(g, p, ActionCall, 0)
	require.Error(t, err)
	assert.IsType(t, InvalidActionError{}, err)
}

func TestProcessActionCallForLessIsAllIn(t *testing.T) {
	g := newBettingGame(50)
	p := &Player{Seat: 1, Stack: 20, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionCall, 0))
	assert.Equal(t, 0.0, p.Stack)
	assert.Equal(t, 20.0, p.Bet)
	assert.Equal(t, PlayerStatusAllIn, p.Status)
	assert.Equal(t, ActionAllIn, p.Action)
	assert.Equal(t, 50.0, g.CurrentBet, "short call does not lower the current bet")
}

func TestProcessActionBet(t *testing.T) {
	g := newBettingGame(0)
	p := &Player{Seat: 1, Stack: 100, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionBet, 10))
	assert.Equal(t, 90.0, p.Stack)
	assert.Equal(t, 10.0, g.CurrentBet)
	assert.Equal(t, ActionBet, p.Action)
}

func TestProcessActionBetInvalid(t *testing.T) {
	g := newBettingGame(0)
	p := &Player{Seat: 1, Stack: 100, Status: PlayerStatusActive}
	require.Error(t, ProcessAction(g, p, ActionBet, 0))
	require.Error(t, ProcessAction(g, p, ActionBet, -5))

	g.CurrentBet = 2
	require.Error(t, ProcessAction(g, p, ActionBet, 10), "cannot bet into an open bet")
}

func TestProcessActionRaise(t *testing.T) {
	g := newBettingGame(10)
	p := &Player{Seat: 1, Stack: 100, Bet: 2, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionRaise, 18))
	assert.Equal(t, 82.0, p.Stack)
	assert.Equal(t, 20.0, p.Bet)
	assert.Equal(t, 20.0, g.CurrentBet)
}

func TestProcessActionRaiseInvalid(t *testing.T) {
	g := newBettingGame(0)
	p := &Player{Seat: 1, Stack: 100, Status: PlayerStatusActive}
	require.Error(t, ProcessAction(g, p, ActionRaise, 10), "no bet to raise")

	g.CurrentBet = 10
	require.Error(t, ProcessAction(g, p, ActionRaise, 0))
	require.Error(t, ProcessAction(g, p, ActionRaise, 5), "raise must exceed the current bet")
}

func TestProcessActionShortAllInRaise(t *testing.T) {
	g := newBettingGame(50)
	p := &Player{Seat: 1, Stack: 30, Bet: 10, Status: PlayerStatusActive}

	// Raising the whole short stack is legal even though it does not
	// reach the current bet.
	require.NoError(t, ProcessAction(g, p, ActionRaise, 30))
	assert.Equal(t, 0.0, p.Stack)
	assert.Equal(t, 40.0, p.Bet)
	assert.Equal(t, PlayerStatusAllIn, p.Status)
	assert.Equal(t, 50.0, g.CurrentBet, "under-raise does not move the current bet")
}

func TestProcessActionAllIn(t *testing.T) {
	g := newBettingGame(10)
	p := &Player{Seat: 1, Stack: 100, Bet: 2, Status: PlayerStatusActive}

	require.NoError(t, ProcessAction(g, p, ActionAllIn, 0))
	assert.Equal(t, 0.0, p.Stack)
	assert.Equal(t, 102.0, p.Bet)
	assert.Equal(t, PlayerStatusAllIn, p.Status)
	assert.Equal(t, 102.0, g.CurrentBet)

	broke := &Player{Seat: 2, Stack: 0, Status: PlayerStatusActive}
	require.Error(t, ProcessAction(g, broke, ActionAllIn, 0))
}

func TestValidActions(t *testing.T) {
	testCases := []struct {
		name       string
		currentBet float64
		bet        float64
		stack      float64
		expected   []PlayerAction
	}{
		{
			name:       "no open bet",
			currentBet: 0,
			bet:        0,
			stack:      100,
			expected:   []PlayerAction{ActionFold, ActionCheck, ActionBet, ActionAllIn},
		},
		{
			name:       "facing a bet",
			currentBet: 10,
			bet:        0,
			stack:      100,
			expected:   []PlayerAction{ActionFold, ActionCall, ActionRaise, ActionAllIn},
		},
		{
			name:       "already matched",
			currentBet: 10,
			bet:        10,
			stack:      90,
			expected:   []PlayerAction{ActionFold, ActionCheck, ActionRaise, ActionAllIn},
		},
		{
			name:       "short stack facing a bet",
			currentBet: 50,
			bet:        0,
			stack:      20,
			expected:   []PlayerAction{ActionFold, ActionCall, ActionAllIn},
		},
	}

	for _, tc := range testCases {
		g := newBettingGame(tc.currentBet)
		p := &Player{Seat: 1, Stack: tc.stack, Bet: tc.bet, Status: PlayerStatusActive}
		assert.Equal(t, tc.expected, ValidActions(g, p), tc.name)
	}
}

func TestMinRaise(t *testing.T) {
	assert.Equal(t, 2.0, MinRaise(0, 2))
	assert.Equal(t, 20.0, MinRaise(10, 2))
	assert.Equal(t, 1.1, MinRaise(0.55, 0.55))
}

func TestIsRoundComplete(t *testing.T) {
	players := []*Player{
		{Seat: 1, Status: PlayerStatusActive, Bet: 10, Action: ActionCall},
		{Seat: 2, Status: PlayerStatusActive, Bet: 10, Action: ActionBet},
		{Seat: 3, Status: PlayerStatusFolded},
	}
	assert.True(t, IsRoundComplete(players, 10))

	players[0].Action = ActionNone
	assert.False(t, IsRoundComplete(players, 10), "pending player blocks completion")

	players[0].Action = ActionCall
	players[0].Bet = 4
	assert.False(t, IsRoundComplete(players, 10), "unmatched bet blocks completion")
}

func TestCollectBets(t *testing.T) {
	g := newBettingGame(10)
	g.Pot = 5
	players := []*Player{
		{Seat: 1, Bet: 10, Action: ActionCall, Status: PlayerStatusActive},
		{Seat: 2, Bet: 10, Action: ActionBet, Status: PlayerStatusActive},
		{Seat: 3, Bet: 4, Action: ActionFold, Status: PlayerStatusFolded},
	}

	collected := CollectBets(g, players)
	assert.Equal(t, 24.0, collected)
	assert.Equal(t, 29.0, g.Pot)
	assert.Equal(t, 0.0, g.CurrentBet)
	for _, p := range players {
		assert.Equal(t, 0.0, p.Bet)
		assert.Equal(t, ActionNone, p.Action)
	}
}
