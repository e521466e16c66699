package game

import "fmt"

// InvalidActionError is returned when an action is illegal for the
// current player and bet state. The snapshot is left untouched.
type InvalidActionError struct {
	Seat   int
	Action PlayerAction
	Msg    string
}

func (e InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %q by seat %d: %s", e.Action.String(), e.Seat, e.Msg)
}

// PotDistributionError is returned when a computed pot has no eligible
// winner. This is an invariant violation and must never be silently
// dropped.
type PotDistributionError struct {
	Pot         Pot
	WinnerSeats []int
}

func (e PotDistributionError) Error() string {
	return fmt.Sprintf("pot of %.2f (eligible seats %v) has no eligible winner among %v",
		e.Pot.Amount, e.Pot.EligibleSeats, e.WinnerSeats)
}
