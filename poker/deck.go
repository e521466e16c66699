package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInsufficientCards is returned when a deal asks for more cards than
// the deck holds. Unreachable with a fresh 52-card deck and ten or
// fewer seats, so callers treat it as fatal.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

var fullDeck *Deck

func init() {
	fullDeck = &Deck{cards: initializeFullCards()}
}

type Deck struct {
	cards []Card
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDeck returns a freshly shuffled 52-card deck.
func NewDeck() *Deck {
	return NewDeckNoShuffle().Shuffle()
}

func NewDeckNoShuffle() *Deck {
	deck := &Deck{}
	deck.cards = make([]Card, len(fullDeck.cards))
	copy(deck.cards, fullDeck.cards)
	return deck
}

// Shuffle returns a new deck holding a uniformly random permutation of
// the receiver's cards. The receiver is left untouched.
func (deck *Deck) Shuffle() *Deck {
	shuffled := make([]Card, len(deck.cards))
	copy(shuffled, deck.cards)

	randGen := rand.New(newSeed())
	for i := len(shuffled) - 1; i > 0; i-- {
		j := randGen.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return &Deck{cards: shuffled}
}

// Draw removes and returns the first n cards, shrinking the deck.
func (deck *Deck) Draw(n int) ([]Card, error) {
	return Deal(&deck.cards, n)
}

// Deal removes and returns the first n cards from a raw card slice.
// Used by the game engine, whose snapshot persists the deck as a slice.
func Deal(deck *[]Card, n int) ([]Card, error) {
	if n > len(*deck) {
		return nil, errors.Wrapf(ErrInsufficientCards, "wanted %d, have %d", n, len(*deck))
	}
	cards := make([]Card, n)
	copy(cards, (*deck)[:n])
	*deck = (*deck)[n:]
	return cards, nil
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

// Cards returns the remaining cards in deal order.
func (deck *Deck) Cards() []Card {
	cards := make([]Card, len(deck.cards))
	copy(cards, deck.cards)
	return cards
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}

func initializeFullCards() []Card {
	var cards []Card

	for _, rank := range strRanks {
		for _, suit := range []string{"S", "H", "D", "C"} {
			cards = append(cards, NewCard(rank+suit))
		}
	}

	return cards
}

type CardsInAscii []string

// DeckFromScript builds a stacked deck that deals the given hole cards
// and board. Hole cards are dealt two at a time per seat, in seat
// order, followed by the flop, turn and river. The unnamed remainder of
// the 52 cards fills the tail in enumeration order.
func DeckFromScript(playerCards []CardsInAscii, flop CardsInAscii, turn string, river string) (*Deck, error) {
	scripted := make([]Card, 0, 52)
	seen := make(map[Card]bool)

	place := func(token string) error {
		card, err := ParseCard(token)
		if err != nil {
			return err
		}
		if seen[card] {
			return errors.Errorf("card %s appears twice in script", token)
		}
		seen[card] = true
		scripted = append(scripted, card)
		return nil
	}

	for _, holeCards := range playerCards {
		if len(holeCards) != 2 {
			return nil, errors.Errorf("expected 2 hole cards per seat, got %d", len(holeCards))
		}
		for _, token := range holeCards {
			if err := place(token); err != nil {
				return nil, err
			}
		}
	}
	if len(flop) != 3 {
		return nil, errors.Errorf("expected 3 flop cards, got %d", len(flop))
	}
	for _, token := range flop {
		if err := place(token); err != nil {
			return nil, err
		}
	}
	if err := place(turn); err != nil {
		return nil, err
	}
	if err := place(river); err != nil {
		return nil, err
	}

	for _, card := range fullDeck.cards {
		if !seen[card] {
			scripted = append(scripted, card)
		}
	}

	return &Deck{cards: scripted}, nil
}
