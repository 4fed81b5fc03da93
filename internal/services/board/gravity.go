package board

import (
	"fmt"

	"github.com/mcoot/trio/internal/model"
)

// Settle removes the given positions, lets the surviving cells of each
// column fall to the bottom in their original order, and fills the gaps
// left at the top from source. Columns are filled left to right, each
// top-down, which fixes the order cells are drawn from source.
func Settle(grid model.Grid, clear model.PositionSet, source CellSource) (model.Grid, error) {
	width, height := grid.Width(), grid.Height()
	cells := grid.Cells()
	for pos := range clear {
		if !grid.Contains(pos) {
			return model.Grid{}, fmt.Errorf("%w: %s on %dx%d grid", model.ErrOutOfBounds, pos, width, height)
		}
		cells[pos.Row*width+pos.Col] = model.CellEmpty
	}

	for col := 0; col < width; col++ {
		write := height - 1
		for row := height - 1; row >= 0; row-- {
			c := cells[row*width+col]
			if c.IsEmpty() {
				continue
			}
			cells[write*width+col] = c
			write--
		}
		for row := 0; row <= write; row++ {
			cells[row*width+col] = source.Next()
		}
	}

	return model.NewGrid(width, height, cells)
}
