package game

// Decider chooses an action for a player on their turn. The engine
// consults it during betting rounds, so a networked turn clock can be
// substituted without touching the state machine.
type Decider interface {
	Decide(g *Game, p *Player, validActions []PlayerAction) (PlayerAction, float64)
}

// CallingDecider auto-resolves a betting round: every player calls an
// open bet and checks otherwise. This reproduces the reference
// auto-play behavior for simulations and tests.
type CallingDecider struct{}

func (CallingDecider) Decide(g *Game, p *Player, validActions []PlayerAction) (PlayerAction, float64) {
	for _, action := range validActions {
		if action == ActionCall {
			return ActionCall, 0
		}
	}
	return ActionCheck, 0
}
