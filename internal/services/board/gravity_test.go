package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/trio/internal/dependencies/mocks"
	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/scoring"
	"github.com/mcoot/trio/internal/testutil"
)

func newMockSource(t *testing.T, values ...int) (*RandomSource, *mocks.MockRandom) {
	t.Helper()
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(values...)
	// Palette order: R G B Y P O
	source, err := NewRandomSource(rnd, scoring.New(scoring.DefaultTable()).Palette())
	require.NoError(t, err)
	return source, rnd
}

func TestSettleDropsSurvivorsAndRefillsTop(t *testing.T) {
	grid := testutil.MustGrid(t, "RGB/YPO/GBR")
	source, rnd := newMockSource(t, 5) // O

	clear := model.PositionSet{}
	clear.Add(testutil.Pos(1, 1))

	settled, err := Settle(grid, clear, source)
	require.NoError(t, err)

	assert.Equal(t, "ROB/YGO/GBR", settled.String())
	assert.Equal(t, 0, rnd.Remaining())
}

func TestSettleFillsColumnsLeftToRightTopDown(t *testing.T) {
	grid := testutil.MustGrid(t, "RGB/YPO/GBR")
	source, rnd := newMockSource(t, 0, 1, 2, 3) // R G B Y

	clear := model.PositionSet{}
	clear.Add(testutil.Pos(0, 0), testutil.Pos(1, 0), testutil.Pos(2, 0), testutil.Pos(2, 2))

	settled, err := Settle(grid, clear, source)
	require.NoError(t, err)

	assert.Equal(t, "RGY/GPB/BBO", settled.String())
	assert.Equal(t, 0, rnd.Remaining())
}

func TestSettleWithNothingToClearIsIdentity(t *testing.T) {
	grid := testutil.MustGrid(t, "RGB/YPO/GBR")
	source, _ := newMockSource(t)

	settled, err := Settle(grid, model.PositionSet{}, source)
	require.NoError(t, err)
	assert.True(t, grid.Equal(settled))
}

func TestSettleLeavesInputUntouched(t *testing.T) {
	grid := testutil.MustGrid(t, "RGB/YPO/GBR")
	source, _ := newMockSource(t, 5)

	clear := model.PositionSet{}
	clear.Add(testutil.Pos(2, 2))
	_, err := Settle(grid, clear, source)
	require.NoError(t, err)

	assert.Equal(t, "RGB/YPO/GBR", grid.String())
}

func TestSettleOutOfBounds(t *testing.T) {
	grid := testutil.MustGrid(t, "RGB/YPO/GBR")
	source, _ := newMockSource(t)

	clear := model.PositionSet{}
	clear.Add(testutil.Pos(3, 0))

	_, err := Settle(grid, clear, source)
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestNewRandomSourceRejectsSmallPalette(t *testing.T) {
	_, err := NewRandomSource(mocks.NewMockRandom(), []model.CellType{model.CellRed})
	assert.ErrorIs(t, err, model.ErrEmptyPalette)

	_, err = NewRandomSource(mocks.NewMockRandom(), []model.CellType{model.CellRed, model.CellEmpty})
	assert.ErrorIs(t, err, model.ErrUnknownCellType)
}
