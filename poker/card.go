package poker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Card is a bit-packed representation of a playing card.
//
//   +--------+--------+--------+--------+
//   |xxxbbbbb|bbbbbbbb|SSSSrrrr|xxpppppp|
//   +--------+--------+--------+--------+
//
// p = prime number of rank, r = rank index (0..12), S = suit bit,
// b = bit set for the rank. The layout makes flush detection and
// prime-product lookups cheap in the evaluator.
type Card int32

var (
	intRanks [13]int32
	strRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	primes   = []int32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}
)

var (
	strRankToIntRank = map[string]int32{}
	charSuitToIntSuit = map[uint8]int32{
		'S': 1, // spades
		'H': 2, // hearts
		'D': 4, // diamonds
		'C': 8, // clubs
	}
	intSuitToCharSuit = "xSHxDxxxC"
)

var prettySuits = map[int32]string{
	1: "♠", // spades
	2: "❤", // hearts
	4: "♦", // diamonds
	8: "♣", // clubs
}

func init() {
	for i := 0; i < 13; i++ {
		intRanks[i] = int32(i)
	}

	for i, rank := range strRanks {
		strRankToIntRank[rank] = intRanks[i]
	}
}

func newCard(rankInt int32, suitInt int32) Card {
	rankPrime := primes[rankInt]

	bitRank := int32(1) << uint32(rankInt) << 16
	suit := suitInt << 12
	rank := rankInt << 8

	return Card(bitRank | suit | rank | rankPrime)
}

// ParseCard parses a card token: rank ("2"-"10", "J", "Q", "K", "A")
// followed by suit ("H", "D", "C", "S"), e.g. "AH" or "10D".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return 0, errors.Errorf("invalid card token %q", s)
	}
	suitInt, ok := charSuitToIntSuit[s[len(s)-1]]
	if !ok {
		return 0, errors.Errorf("invalid suit in card token %q", s)
	}
	rankInt, ok := strRankToIntRank[s[:len(s)-1]]
	if !ok {
		return 0, errors.Errorf("invalid rank in card token %q", s)
	}
	return newCard(rankInt, suitInt), nil
}

// NewCard parses a card token and panics on a malformed one. Use for
// literals in scripts and tests; use ParseCard for external input.
func NewCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

func (c Card) String() string {
	return strRanks[c.Rank()] + string(intSuitToCharSuit[c.Suit()])
}

func (c *Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.Errorf("invalid card JSON %s", string(b))
	}
	card, err := ParseCard(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

func (c Card) Rank() int32 {
	return (int32(c) >> 8) & 0xF
}

func (c Card) Suit() int32 {
	return (int32(c) >> 12) & 0xF
}

func (c Card) BitRank() int32 {
	return (int32(c) >> 16) & 0x1FFF
}

func (c Card) Prime() int32 {
	return int32(c) & 0x3F
}

func primeProductFromHand(cards []Card) int32 {
	product := int32(1)

	for _, card := range cards {
		product *= (int32(card) & 0xFF)
	}

	return product
}

func primeProductFromRankBits(rankBits int32) int32 {
	product := int32(1)

	for _, i := range intRanks {
		if rankBits&(1<<uint(i)) != 0 {
			product *= primes[i]
		}
	}

	return product
}

// PrettyCard renders the card with a unicode suit for log output.
func PrettyCard(c Card) string {
	return fmt.Sprintf("%s%s", strRanks[c.Rank()], prettySuits[c.Suit()])
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", PrettyCard(c))
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

// CardTokens formats cards in wire format ("AH", "10D", ...).
func CardTokens(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}
