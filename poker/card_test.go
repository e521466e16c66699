package poker

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCard(t *testing.T) {
	testCases := []struct {
		token string
		rank  int32
		suit  int32
	}{
		{"2S", 0, 1},
		{"10D", 8, 4},
		{"JC", 9, 8},
		{"QH", 10, 2},
		{"KS", 11, 1},
		{"AH", 12, 2},
	}

	for i, tc := range testCases {
		card, err := ParseCard(tc.token)
		if err != nil {
			t.Fatalf("Test case %d ParseCard(%q) returned error [%s]", i, tc.token, err)
		}
		if card.Rank() != tc.rank {
			t.Errorf("Test case %d token: %s, expected rank: %d, actual: %d", i, tc.token, tc.rank, card.Rank())
		}
		if card.Suit() != tc.suit {
			t.Errorf("Test case %d token: %s, expected suit: %d, actual: %d", i, tc.token, tc.suit, card.Suit())
		}
		if card.String() != tc.token {
			t.Errorf("Test case %d token: %s, String() round trip: %s", i, tc.token, card.String())
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, token := range []string{"", "A", "AX", "1H", "11H", "ah", "H10"} {
		if _, err := ParseCard(token); err == nil {
			t.Errorf("ParseCard(%q) expected error, got none", token)
		}
	}
}

func TestCardBitLayout(t *testing.T) {
	card := NewCard("KS")
	if card.Prime() != 37 {
		t.Errorf("KS prime expected 37, actual %d", card.Prime())
	}
	if card.BitRank() != 1<<11 {
		t.Errorf("KS bit rank expected %d, actual %d", 1<<11, card.BitRank())
	}
}

func TestCardJSON(t *testing.T) {
	cards := []Card{NewCard("AS"), NewCard("10D"), NewCard("2C")}
	data, err := json.Marshal(cards)
	if err != nil {
		t.Fatalf("Marshal returned error [%s]", err)
	}
	expected := `["AS","10D","2C"]`
	if string(data) != expected {
		t.Errorf("expected JSON %s, actual %s", expected, string(data))
	}

	var decoded []Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error [%s]", err)
	}
	if !cmp.Equal(decoded, cards) {
		t.Errorf("expected cards %v, actual %v", cards, decoded)
	}
}

func TestFullDeckUnique(t *testing.T) {
	cards := NewDeckNoShuffle().Cards()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, actual %d", len(cards))
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("card %s appears twice", c.String())
		}
		seen[c] = true
	}
}
