package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/trio/internal/dependencies/mocks"
	"github.com/mcoot/trio/internal/model"
)

var candidates = []model.CandidateMove{
	{From: model.Position{Row: 0, Col: 0}, To: model.Position{Row: 0, Col: 1}, Score: 30},
	{From: model.Position{Row: 1, Col: 0}, To: model.Position{Row: 1, Col: 1}, Score: 30},
	{From: model.Position{Row: 2, Col: 0}, To: model.Position{Row: 2, Col: 1}, Score: 60},
}

func TestGreedyStrategyPicksLast(t *testing.T) {
	move, ok := NewGreedyStrategy().ChooseMove(model.Grid{}, candidates)

	assert.True(t, ok)
	assert.Equal(t, 60, move.Score)
}

func TestRandomStrategyUsesRandom(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(1)

	move, ok := NewRandomStrategy(rnd).ChooseMove(model.Grid{}, candidates)

	assert.True(t, ok)
	assert.Equal(t, candidates[1], move)
}

func TestStrategiesPassWithoutCandidates(t *testing.T) {
	for name, st := range DefaultStrategies(mocks.NewMockRandom()) {
		_, ok := st.ChooseMove(model.Grid{}, nil)
		assert.False(t, ok, name)
	}
}
