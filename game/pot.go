package game

import (
	"sort"

	"github.com/hijack-gaming/holdem-engine/util"
)

// CalculatePots rebuilds the main and side pots from the players'
// cumulative wagers. Contributors are layered by distinct totalBet
// levels ascending: each level's increment is funded by everyone who
// wagered past the previous level, and only non-folded players who
// matched the level are eligible to win it. Folded players' chips
// inflate pot amounts without granting eligibility.
func CalculatePots(players []*Player) []Pot {
	contributors := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.TotalBet > 0 {
			contributors = append(contributors, p)
		}
	}
	if len(contributors) == 0 {
		return nil
	}

	levelSet := make(map[float64]bool)
	for _, p := range contributors {
		levelSet[p.TotalBet] = true
	}
	levels := make([]float64, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Float64s(levels)

	pots := make([]Pot, 0, len(levels))
	previousLevel := 0.0
	for _, level := range levels {
		levelAmount := level - previousLevel

		eligible := make([]int, 0, len(contributors))
		funders := 0
		for _, p := range contributors {
			if util.Greater(p.TotalBet, previousLevel) {
				funders++
			}
			if util.GreaterOrNearlyEqual(p.TotalBet, level) && !p.IsFolded() {
				eligible = append(eligible, p.Seat)
			}
		}
		sort.Ints(eligible)

		potAmount := util.ToMoney(levelAmount * float64(funders))
		if potAmount > 0 && len(eligible) > 0 {
			pots = append(pots, Pot{Amount: potAmount, EligibleSeats: eligible})
		}

		previousLevel = level
	}

	return pots
}

// DistributePots splits each pot among the winners eligible for it.
// Shares are rounded to cents; remainder cents go to winners in
// clockwise seat order starting from the first seat after the dealer
// button. A pot with no eligible winner is an invariant violation and
// returns PotDistributionError.
func DistributePots(pots []Pot, winnerSeats []int, dealerSeat int, maxSeats int) (map[int]float64, error) {
	payouts := make(map[int]float64)

	for _, pot := range pots {
		eligibleWinners := make([]int, 0, len(winnerSeats))
		for _, seat := range winnerSeats {
			for _, eligible := range pot.EligibleSeats {
				if seat == eligible {
					eligibleWinners = append(eligibleWinners, seat)
					break
				}
			}
		}

		if len(eligibleWinners) == 0 {
			return nil, PotDistributionError{Pot: pot, WinnerSeats: winnerSeats}
		}

		ordered := clockwiseFrom(eligibleWinners, dealerSeat, maxSeats)
		shares := make([]float64, len(ordered))
		util.SplitCents(pot.Amount, len(ordered), shares)
		for i, seat := range ordered {
			payouts[seat] = util.ToMoney(payouts[seat] + shares[i])
		}
	}

	return payouts, nil
}

// SimplePot sums every player's hand wager into a single amount. Used
// when no side-pot structure exists.
func SimplePot(players []*Player) float64 {
	total := 0.0
	for _, p := range players {
		total = util.ToMoney(total + p.TotalBet)
	}
	return total
}

// clockwiseFrom orders seats by clockwise distance from the seat after
// the dealer button.
func clockwiseFrom(seats []int, dealerSeat int, maxSeats int) []int {
	if maxSeats <= 0 {
		maxSeats = 1
	}
	distance := func(seat int) int {
		return ((seat - dealerSeat - 1) % maxSeats + maxSeats) % maxSeats
	}
	ordered := make([]int, len(seats))
	copy(ordered, seats)
	sort.Slice(ordered, func(i, j int) bool { return distance(ordered[i]) < distance(ordered[j]) })
	return ordered
}
