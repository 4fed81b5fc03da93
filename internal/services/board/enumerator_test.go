package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/scoring"
	"github.com/mcoot/trio/internal/testutil"
)

func defaultCost() func(model.CellType) int {
	return scoring.New(scoring.DefaultTable()).Cost
}

func TestPossibleMovesSortedAscending(t *testing.T) {
	grid := testutil.MustGrid(t, "RRGY/BGRO/YYBY/GBPO")

	moves := PossibleMoves(grid, defaultCost())

	assert.Equal(t, []model.CandidateMove{
		{From: testutil.Pos(0, 2), To: testutil.Pos(1, 2), Score: 30}, // RRR
		{From: testutil.Pos(2, 2), To: testutil.Pos(2, 3), Score: 45}, // YYY
	}, moves)
}

func TestPossibleMovesTiesKeepDiscoveryOrder(t *testing.T) {
	grid := testutil.MustGrid(t, "RRBG/GBRR/YPOY")

	moves := PossibleMoves(grid, defaultCost())

	assert.Equal(t, []model.CandidateMove{
		{From: testutil.Pos(0, 1), To: testutil.Pos(1, 1), Score: 30},
		{From: testutil.Pos(0, 2), To: testutil.Pos(1, 2), Score: 30},
	}, moves)
}

func TestPossibleMovesStuckGrid(t *testing.T) {
	grid := testutil.MustGrid(t, "RRG/GBB/YPO")

	assert.Empty(t, PossibleMoves(grid, defaultCost()))
}

func TestPossibleMovesDoesNotMutateGrid(t *testing.T) {
	grid := testutil.MustGrid(t, "RRGY/BGRO/YYBY/GBPO")
	before := grid.String()

	_ = PossibleMoves(grid, defaultCost())

	assert.Equal(t, before, grid.String())
}

func TestPossibleMovesScoresOnlyFirstClear(t *testing.T) {
	// Swapping (0,2) and (1,2) clears the top row of R. Nothing is refilled
	// during the lookahead, so only those three cells count.
	grid := testutil.MustGrid(t, "RRGY/BGRO/YYBY/GBPO")

	moves := PossibleMoves(grid, func(c model.CellType) int { return 1 })

	require.Len(t, moves, 2)
	assert.Equal(t, 3, moves[0].Score)
	assert.Equal(t, 3, moves[1].Score)
}

func TestPossibleMovesProperties(t *testing.T) {
	cost := defaultCost()
	for seed := uint64(1); seed <= 20; seed++ {
		source, err := NewRandomSource(random.NewSeeded(seed), scoring.New(scoring.DefaultTable()).Palette())
		require.NoError(t, err)
		grid, err := Generate(7, 6, source)
		require.NoError(t, err)

		moves := PossibleMoves(grid, cost)
		for i, m := range moves {
			assert.Positive(t, m.Score)
			assert.True(t, m.From.IsAdjacent(m.To), "move %d is not adjacent", i)
			if i > 0 {
				assert.LessOrEqual(t, moves[i-1].Score, m.Score)
			}
		}
	}
}
