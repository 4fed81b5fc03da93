package bot

import (
	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/model"
)

// Strategy defines how a bot chooses a swap
type Strategy interface {
	// ChooseMove picks one of the candidates, ranked lowest score first.
	// Returning false passes the turn.
	ChooseMove(grid model.Grid, candidates []model.CandidateMove) (model.CandidateMove, bool)
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyGreedy: NewGreedyStrategy(),
		model.BotStrategyRandom: NewRandomStrategy(rnd),
	}
}

// GreedyStrategy always plays the highest scoring candidate
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// ChooseMove returns the last candidate, which scores highest
func (s *GreedyStrategy) ChooseMove(grid model.Grid, candidates []model.CandidateMove) (model.CandidateMove, bool) {
	if len(candidates) == 0 {
		return model.CandidateMove{}, false
	}
	return candidates[len(candidates)-1], true
}
