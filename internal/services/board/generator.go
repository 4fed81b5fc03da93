package board

import (
	"fmt"

	"github.com/mcoot/trio/internal/model"
)

// MaxCascadeIterations bounds every clear/settle loop. A random source
// settles long before this; only a degenerate source can reach it.
const MaxCascadeIterations = 1000

// Generate fills a width x height grid from source and keeps clearing
// runs until none remain. The result is match-free but may have no
// profitable move.
func Generate(width, height int, source CellSource) (model.Grid, error) {
	if width <= 0 || height <= 0 {
		return model.Grid{}, fmt.Errorf("%w: %dx%d", model.ErrInvalidDimensions, width, height)
	}

	cells := make([]model.CellType, width*height)
	for i := range cells {
		cells[i] = source.Next()
	}
	grid, err := model.NewGrid(width, height, cells)
	if err != nil {
		return model.Grid{}, err
	}

	for range MaxCascadeIterations {
		deletions := FindDeletions(grid)
		if len(deletions) == 0 {
			return grid, nil
		}
		grid, err = Settle(grid, deletions, source)
		if err != nil {
			return model.Grid{}, err
		}
	}
	return model.Grid{}, fmt.Errorf("%w: generating %dx%d grid", model.ErrCascadeLimit, width, height)
}
