package game

import (
	"sort"

	"github.com/pkg/errors"
)

// PlayerStatus is a closed enum over the seat states the table tracks.
// Only Active and AllIn count as in-hand.
type PlayerStatus int

const (
	PlayerStatusUnknown    PlayerStatus = 0
	PlayerStatusActive     PlayerStatus = 1
	PlayerStatusSittingOut PlayerStatus = 2
	PlayerStatusLeaving    PlayerStatus = 3
	PlayerStatusShowCards  PlayerStatus = 4
	PlayerStatusPostBlind  PlayerStatus = 5
	PlayerStatusWaitForBB  PlayerStatus = 6
	PlayerStatusForCharge  PlayerStatus = 7
	PlayerStatusBusted     PlayerStatus = 8
	PlayerStatusExitTable  PlayerStatus = 9
	PlayerStatusMuckCards  PlayerStatus = 10
	PlayerStatusFolded     PlayerStatus = 11
	PlayerStatusAllIn      PlayerStatus = 12
)

var playerStatusNames = map[PlayerStatus]string{
	PlayerStatusUnknown:    "UNKNOWN",
	PlayerStatusActive:     "ACTIVE",
	PlayerStatusSittingOut: "SITTING_OUT",
	PlayerStatusLeaving:    "LEAVING",
	PlayerStatusShowCards:  "SHOW_CARDS",
	PlayerStatusPostBlind:  "POST_BLIND",
	PlayerStatusWaitForBB:  "WAIT_FOR_BB",
	PlayerStatusForCharge:  "FOR_CHARGING",
	PlayerStatusBusted:     "BUSTED",
	PlayerStatusExitTable:  "EXIT_TABLE",
	PlayerStatusMuckCards:  "MUCK_CARDS",
	PlayerStatusFolded:     "FOLDED",
	PlayerStatusAllIn:      "ALL_IN",
}

var playerStatusValues = map[string]PlayerStatus{}

func init() {
	for status, name := range playerStatusNames {
		playerStatusValues[name] = status
	}
	for action, name := range playerActionNames {
		playerActionValues[name] = action
	}
}

func (s PlayerStatus) String() string {
	if name, ok := playerStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s PlayerStatus) MarshalJSON() ([]byte, error) {
	return []byte("\"" + s.String() + "\""), nil
}

func (s *PlayerStatus) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' {
		return errors.Errorf("invalid player status JSON %s", string(b))
	}
	status, ok := playerStatusValues[string(b[1:len(b)-1])]
	if !ok {
		return errors.Errorf("unknown player status %s", string(b))
	}
	*s = status
	return nil
}

// PlayerAction is the action a player took in the current betting
// round. ActionNone means the player has not acted since the last
// bet collection.
type PlayerAction int

const (
	ActionNone  PlayerAction = 0
	ActionFold  PlayerAction = 1
	ActionCheck PlayerAction = 2
	ActionCall  PlayerAction = 3
	ActionBet   PlayerAction = 4
	ActionRaise PlayerAction = 5
	ActionAllIn PlayerAction = 6
)

var playerActionNames = map[PlayerAction]string{
	ActionNone:  "",
	ActionFold:  "fold",
	ActionCheck: "check",
	ActionCall:  "call",
	ActionBet:   "bet",
	ActionRaise: "raise",
	ActionAllIn: "allin",
}

var playerActionValues = map[string]PlayerAction{}

func (a PlayerAction) String() string {
	return playerActionNames[a]
}

func (a PlayerAction) MarshalJSON() ([]byte, error) {
	return []byte("\"" + a.String() + "\""), nil
}

func (a *PlayerAction) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' {
		return errors.Errorf("invalid player action JSON %s", string(b))
	}
	action, ok := playerActionValues[string(b[1:len(b)-1])]
	if !ok {
		return errors.Errorf("unknown player action %s", string(b))
	}
	*a = action
	return nil
}

// NoSeat is the sentinel returned by NextSeat when no eligible seat
// exists, e.g. when every remaining player is all-in.
const NoSeat = -1

// IsInHand reports whether the player is still contesting the hand.
func (p *Player) IsInHand() bool {
	return p.Status == PlayerStatusActive || p.Status == PlayerStatusAllIn
}

func (p *Player) IsFolded() bool {
	return p.Status == PlayerStatusFolded
}

func (p *Player) IsAllIn() bool {
	return p.Status == PlayerStatusAllIn
}

// PlayersInHand returns the players still contesting the hand, in seat
// order.
func PlayersInHand(players []*Player) []*Player {
	inHand := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.IsInHand() {
			inHand = append(inHand, p)
		}
	}
	sort.Slice(inHand, func(i, j int) bool { return inHand[i].Seat < inHand[j].Seat })
	return inHand
}

// ActingCount returns the number of players who can still act, i.e.
// Active and not all-in.
func ActingCount(players []*Player) int {
	count := 0
	for _, p := range players {
		if p.Status == PlayerStatusActive {
			count++
		}
	}
	return count
}

func PlayerBySeat(players []*Player, seat int) *Player {
	for _, p := range players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// NextSeat scans seats fromSeat+1..fromSeat+maxSeats with wraparound
// and returns the first seat holding an Active player, or NoSeat.
// Drives dealer rotation, blind assignment and first-to-act.
func NextSeat(players []*Player, fromSeat int, maxSeats int) int {
	if maxSeats <= 0 {
		return NoSeat
	}
	for i := 1; i <= maxSeats; i++ {
		seat := ((fromSeat-1+i)%maxSeats + 1)
		player := PlayerBySeat(players, seat)
		if player != nil && player.Status == PlayerStatusActive {
			return seat
		}
	}
	return NoSeat
}
