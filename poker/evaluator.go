package poker

import (
	"fmt"
)

var table *lookupTable

func init() {
	table = newLookupTable()
}

// RankClass maps a rank to its hand category (StraightFlush..HighCard).
// Lower ranks are stronger hands: rank 1 is a royal flush, rank 7462
// the worst high card.
func RankClass(rank int32) int32 {
	targets := [...]int32{
		MaxStraightFlush,
		MaxFourOfAKind,
		MaxFullHouse,
		MaxFlush,
		MaxStraight,
		MaxThreeOfAKind,
		MaxTwoPair,
		MaxPair,
		MaxHighCard,
	}

	if rank < 0 {
		panic(fmt.Sprintf("rank %d is less than zero", rank))
	}

	for _, target := range targets {
		if rank <= target {
			return maxToRankClass[target]
		}
	}

	panic(fmt.Sprintf("rank %d is unknown", rank))
}

// RankString returns the human-readable category for a rank, e.g.
// "Two Pair" or "Straight Flush".
func RankString(rank int32) string {
	return rankClassToString[RankClass(rank)]
}

// Evaluate returns the total-order rank of the best 5-card hand among
// the given 5, 6 or 7 cards, together with the 5 cards used.
func Evaluate(cards []Card) (int32, []Card) {
	switch len(cards) {
	case 5:
		return five(cards...)
	case 6:
		return six(cards...)
	case 7:
		return seven(cards...)
	default:
		panic("Only support 5, 6 and 7 cards.")
	}
}

func five(cards ...Card) (int32, []Card) {
	if cards[0]&cards[1]&cards[2]&cards[3]&cards[4]&0xF000 != 0 {
		handOR := (cards[0] | cards[1] | cards[2] | cards[3] | cards[4]) >> 16
		prime := primeProductFromRankBits(int32(handOR))
		return table.flushLookup[prime], cards
	}

	prime := primeProductFromHand(cards)
	return table.unsuitedLookup[prime], cards
}

func six(cards ...Card) (int32, []Card) {
	var minimum int32 = MaxHighCard
	targets := make([]Card, len(cards))
	var bestCards []Card = make([]Card, 5)
	for i := 0; i < len(cards); i++ {
		copy(targets, cards)
		targets := append(targets[:i], targets[i+1:]...)

		score, evaluatedCards := five(targets...)
		if score < minimum {
			minimum = score
			copy(bestCards, evaluatedCards)
		}
	}
	return minimum, bestCards
}

func seven(cards ...Card) (int32, []Card) {
	var minimum int32 = MaxHighCard
	targets := make([]Card, len(cards))
	var bestCards []Card = make([]Card, 5)
	for i := 0; i < len(cards); i++ {
		copy(targets, cards)
		targets := append(targets[:i], targets[i+1:]...)

		score, evaluatedCards := six(targets...)
		if score < minimum {
			minimum = score
			copy(bestCards, evaluatedCards)
		}
	}

	return minimum, bestCards
}
