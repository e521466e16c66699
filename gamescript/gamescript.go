package gamescript

import (
	"io/ioutil"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hijack-gaming/holdem-engine/poker"
)

// Script contains table script YAML content.
type Script struct {
	Table Table          `yaml:"table"`
	Seats []StartingSeat `yaml:"starting-seats"`
	Hand  *Hand          `yaml:"hand"`
}

// Table contains table configuration in the table script.
type Table struct {
	MaxSeats   int     `yaml:"max-seats"`
	SmallBlind float64 `yaml:"small-blind"`
	BigBlind   float64 `yaml:"big-blind"`
}

// StartingSeat contains an entry in the starting-seats array.
type StartingSeat struct {
	Seat   int     `yaml:"seat"`
	Player string  `yaml:"player"`
	BuyIn  float64 `yaml:"buy-in"`
}

// Hand stacks the deck for a scripted hand. Seat cards are listed in
// seat order, two tokens per seat.
type Hand struct {
	SeatCards []SeatCards `yaml:"seat-cards"`
	Flop      []string    `yaml:"flop"`
	Turn      string      `yaml:"turn"`
	River     string      `yaml:"river"`
}

type SeatCards struct {
	Seat  int      `yaml:"seat"`
	Cards []string `yaml:"cards"`
}

// ReadGameScript reads a table script yaml file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading table script file [%s]", fileName)
	}

	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Error validating script [%s]", fileName)
	}

	return &script, nil
}

func (s *Script) Validate() error {
	if s.Table.MaxSeats < 2 {
		return errors.Errorf("Invalid max-seats [%d]", s.Table.MaxSeats)
	}
	if len(s.Seats) < 2 {
		return errors.Errorf("At least 2 starting seats are required, got %d", len(s.Seats))
	}

	// Check starting seat numbers and player names are unique.
	startingSeats := mapset.NewSet()
	playerNames := mapset.NewSet()
	for _, seat := range s.Seats {
		if seat.Seat < 1 || seat.Seat > s.Table.MaxSeats {
			return errors.Errorf("Seat [%d] is out of range for a %d-seat table", seat.Seat, s.Table.MaxSeats)
		}
		if startingSeats.Contains(seat.Seat) {
			return errors.Errorf("Duplicate seat number [%d] in starting-seats", seat.Seat)
		}
		startingSeats.Add(seat.Seat)
		if playerNames.Contains(seat.Player) {
			return errors.Errorf("Duplicate player name [%s] in starting-seats", seat.Player)
		}
		playerNames.Add(seat.Player)
	}

	if s.Hand != nil {
		if len(s.Hand.SeatCards) != len(s.Seats) {
			return errors.Errorf("seat-cards has %d entries for %d seats", len(s.Hand.SeatCards), len(s.Seats))
		}
		// Cards are dealt in seat order, so the script must list them
		// that way too.
		prevSeat := 0
		for _, sc := range s.Hand.SeatCards {
			if !startingSeats.Contains(sc.Seat) {
				return errors.Errorf("seat-cards entry for empty seat [%d]", sc.Seat)
			}
			if sc.Seat <= prevSeat {
				return errors.Errorf("seat-cards must be listed in ascending seat order")
			}
			prevSeat = sc.Seat
			if len(sc.Cards) != 2 {
				return errors.Errorf("Seat [%d] must be dealt 2 cards, got %d", sc.Seat, len(sc.Cards))
			}
		}
	}

	return nil
}

// StackedDeck builds the deck the script's hand section describes.
// Returns nil when the script has no hand section.
func (s *Script) StackedDeck() (*poker.Deck, error) {
	if s.Hand == nil {
		return nil, nil
	}

	playerCards := make([]poker.CardsInAscii, 0, len(s.Hand.SeatCards))
	for _, sc := range s.Hand.SeatCards {
		playerCards = append(playerCards, poker.CardsInAscii(sc.Cards))
	}
	return poker.DeckFromScript(playerCards, poker.CardsInAscii(s.Hand.Flop), s.Hand.Turn, s.Hand.River)
}
