package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/trio/internal/model"
)

// MustGrid parses a grid in text form ("RGB/GBR/BRG") or fails the test
func MustGrid(t testing.TB, text string) model.Grid {
	t.Helper()
	grid, err := model.ParseGrid(text)
	require.NoError(t, err)
	return grid
}

// Pos is shorthand for a model.Position
func Pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}
