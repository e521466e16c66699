package poker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func cardCounts(cards []Card) map[Card]int {
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

func TestShuffleDoesNotMutate(t *testing.T) {
	deck := NewDeckNoShuffle()
	before := deck.Cards()

	shuffled := deck.Shuffle()

	if !cmp.Equal(deck.Cards(), before) {
		t.Error("Shuffle mutated the receiver deck")
	}
	if len(shuffled.Cards()) != 52 {
		t.Fatalf("shuffled deck has %d cards", len(shuffled.Cards()))
	}
	if !cmp.Equal(cardCounts(shuffled.Cards()), cardCounts(before)) {
		t.Error("shuffled deck is not a permutation of the original")
	}
}

func TestDraw(t *testing.T) {
	deck := NewDeckNoShuffle()
	first := deck.Cards()[:2]

	cards, err := deck.Draw(2)
	if err != nil {
		t.Fatalf("Draw returned error [%s]", err)
	}
	if !cmp.Equal(cards, first) {
		t.Errorf("expected cards %v, actual %v", first, cards)
	}
	if len(deck.Cards()) != 50 {
		t.Errorf("expected 50 cards remaining, actual %d", len(deck.Cards()))
	}
}

func TestDealInsufficientCards(t *testing.T) {
	cards := []Card{NewCard("AS"), NewCard("KS")}
	_, err := Deal(&cards, 3)
	if err == nil {
		t.Fatal("expected error dealing 3 from 2 cards")
	}
	if errors.Cause(err) != ErrInsufficientCards {
		t.Errorf("expected ErrInsufficientCards, actual [%s]", err)
	}
	if len(cards) != 2 {
		t.Errorf("failed deal mutated the deck, %d cards left", len(cards))
	}
}

func TestDeckFromScript(t *testing.T) {
	players := []CardsInAscii{
		{"KH", "QD"},
		{"3S", "7S"},
	}
	flop := CardsInAscii{"AC", "AD", "2C"}

	deck, err := DeckFromScript(players, flop, "10D", "3H")
	if err != nil {
		t.Fatalf("DeckFromScript returned error [%s]", err)
	}

	cards := deck.Cards()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, actual %d", len(cards))
	}

	expectedHead := []string{"KH", "QD", "3S", "7S", "AC", "AD", "2C", "10D", "3H"}
	head := CardTokens(cards[:len(expectedHead)])
	if !cmp.Equal(head, expectedHead) {
		t.Errorf("expected deck head %v, actual %v", expectedHead, head)
	}

	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("card %s appears twice", c.String())
		}
		seen[c] = true
	}
}

func TestDeckFromScriptDuplicate(t *testing.T) {
	players := []CardsInAscii{
		{"KH", "QD"},
		{"KH", "7S"},
	}
	flop := CardsInAscii{"AC", "AD", "2C"}

	_, err := DeckFromScript(players, flop, "10D", "3H")
	if err == nil {
		t.Fatal("expected duplicate card error")
	}
}
