package game

import "fmt"

// HandStep is the current step of the hand state machine. Steps are
// strictly ordered; the only back-edge is the driver restarting a
// completed hand at GamePrep. Serialized as a small integer.
type HandStep int

const (
	GamePrep               HandStep = 0
	SetupDealer            HandStep = 1
	SetupSmallBlind        HandStep = 2
	SetupBigBlind          HandStep = 3
	DealCards              HandStep = 4
	PreFlopBettingRound    HandStep = 5
	DealFlop               HandStep = 6
	FlopBettingRound       HandStep = 7
	DealTurn               HandStep = 8
	TurnBettingRound       HandStep = 9
	DealRiver              HandStep = 10
	RiverBettingRound      HandStep = 11
	AfterRiverBettingRound HandStep = 12
	FindWinners            HandStep = 13
	PayWinners             HandStep = 14
	RecordStatsAndNewHand  HandStep = 15
	AddOnsAndCharging      HandStep = 16
)

var handStepNames = map[HandStep]string{
	GamePrep:               "GAME_PREP",
	SetupDealer:            "SETUP_DEALER",
	SetupSmallBlind:        "SETUP_SMALL_BLIND",
	SetupBigBlind:          "SETUP_BIG_BLIND",
	DealCards:              "DEAL_CARDS",
	PreFlopBettingRound:    "PRE_FLOP_BETTING_ROUND",
	DealFlop:               "DEAL_FLOP",
	FlopBettingRound:       "FLOP_BETTING_ROUND",
	DealTurn:               "DEAL_TURN",
	TurnBettingRound:       "TURN_BETTING_ROUND",
	DealRiver:              "DEAL_RIVER",
	RiverBettingRound:      "RIVER_BETTING_ROUND",
	AfterRiverBettingRound: "AFTER_RIVER_BETTING_ROUND",
	FindWinners:            "FIND_WINNERS",
	PayWinners:             "PAY_WINNERS",
	RecordStatsAndNewHand:  "RECORD_STATS_AND_NEW_HAND",
	AddOnsAndCharging:      "ADD_ONS_AND_CHARGING",
}

func (s HandStep) String() string {
	if name, ok := handStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// nextStreet maps each betting round to the deal step that follows it.
var nextStreet = map[HandStep]HandStep{
	PreFlopBettingRound: DealFlop,
	FlopBettingRound:    DealTurn,
	TurnBettingRound:    DealRiver,
	RiverBettingRound:   AfterRiverBettingRound,
}
