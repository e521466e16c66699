package game

import (
	"github.com/hijack-gaming/holdem-engine/poker"
)

const lastPlayerStandingRank = "Last player standing"

type evaluatedHand struct {
	seat      int
	playerID  string
	rank      int32
	rankStr   string
	bestCards []poker.Card
}

// evaluateShowdown ranks every in-hand player's best 5-card hand from
// hole cards plus the board and returns the evaluations together with
// the set of winners (everyone tied at the strongest rank). When a
// single player remains the ranking comparison is skipped entirely.
func evaluateShowdown(g *Game, players []*Player) ([]evaluatedHand, []Winner) {
	inHand := PlayersInHand(players)

	if len(inHand) == 1 {
		winner := inHand[0]
		winner.HandRank = lastPlayerStandingRank
		return nil, []Winner{{Seat: winner.Seat, PlayerID: winner.PlayerID}}
	}

	evaluated := make([]evaluatedHand, 0, len(inHand))
	bestRank := int32(-1)
	for _, p := range inHand {
		allCards := make([]poker.Card, 0, len(p.Cards)+len(g.CommunityCards))
		allCards = append(allCards, p.Cards...)
		allCards = append(allCards, g.CommunityCards...)
		rank, bestCards := poker.Evaluate(allCards)

		evaluated = append(evaluated, evaluatedHand{
			seat:      p.Seat,
			playerID:  p.PlayerID,
			rank:      rank,
			rankStr:   poker.RankString(rank),
			bestCards: bestCards,
		})
		p.HandRank = poker.RankString(rank)

		if bestRank == -1 || rank < bestRank {
			bestRank = rank
		}
	}

	winners := make([]Winner, 0, 1)
	for _, hand := range evaluated {
		if hand.rank == bestRank {
			winners = append(winners, Winner{Seat: hand.seat, PlayerID: hand.playerID})
		}
	}

	return evaluated, winners
}
