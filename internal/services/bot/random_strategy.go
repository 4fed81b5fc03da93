package bot

import (
	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/model"
)

// RandomStrategy picks any scoring candidate with equal probability
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove picks a random candidate
func (s *RandomStrategy) ChooseMove(grid model.Grid, candidates []model.CandidateMove) (model.CandidateMove, bool) {
	if len(candidates) == 0 {
		return model.CandidateMove{}, false
	}
	return candidates[s.random.Intn(len(candidates))], true
}
