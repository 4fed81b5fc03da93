package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/trio/internal/dependencies/mocks"
	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/scoring"
)

func seededSource(t *testing.T, seed uint64) *RandomSource {
	t.Helper()
	source, err := NewRandomSource(random.NewSeeded(seed), scoring.New(scoring.DefaultTable()).Palette())
	require.NoError(t, err)
	return source
}

func TestGenerateFillsRowMajorFromSource(t *testing.T) {
	source, rnd := newMockSource(t, 0, 1, 2, 1, 2, 0, 2, 0, 1)

	grid, err := Generate(3, 3, source)
	require.NoError(t, err)

	assert.Equal(t, "RGB/GBR/BRG", grid.String())
	assert.Equal(t, 0, rnd.Remaining())
}

func TestGenerateClearsInitialRuns(t *testing.T) {
	// The first fill has a top row of R; settling refills it with G B Y.
	source, rnd := newMockSource(t, 0, 0, 0, 1, 2, 0, 2, 0, 1, 1, 2, 3)

	grid, err := Generate(3, 3, source)
	require.NoError(t, err)

	assert.Equal(t, "GBY/GBR/BRG", grid.String())
	assert.Empty(t, FindDeletions(grid))
	assert.Equal(t, 0, rnd.Remaining())
}

func TestGenerateIsMatchFree(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		for size := 3; size <= 8; size++ {
			grid, err := Generate(size, size+1, seededSource(t, seed))
			require.NoError(t, err)

			assert.Equal(t, size, grid.Width())
			assert.Equal(t, size+1, grid.Height())
			assert.Empty(t, FindDeletions(grid), "seed %d size %d", seed, size)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := Generate(8, 8, seededSource(t, 42))
	require.NoError(t, err)
	second, err := Generate(8, 8, seededSource(t, 42))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestGenerateInvalidDimensions(t *testing.T) {
	_, err := Generate(0, 3, seededSource(t, 1))
	assert.ErrorIs(t, err, model.ErrInvalidDimensions)

	_, err = Generate(3, -1, seededSource(t, 1))
	assert.ErrorIs(t, err, model.ErrInvalidDimensions)
}

func TestGenerateDegenerateSourceHitsLimit(t *testing.T) {
	// An empty mock queue always yields index 0, so every cell is R
	source, err := NewRandomSource(mocks.NewMockRandom(), []model.CellType{model.CellRed, model.CellBlue})
	require.NoError(t, err)

	_, err = Generate(3, 3, source)
	assert.ErrorIs(t, err, model.ErrCascadeLimit)
}
