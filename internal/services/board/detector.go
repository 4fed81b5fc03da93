package board

import "github.com/mcoot/trio/internal/model"

// MinRunLength is the shortest run of equal cells that gets cleared
const MinRunLength = 3

// FindDeletions returns every position that belongs to a horizontal or
// vertical run of at least MinRunLength equal cells, over the whole grid.
func FindDeletions(grid model.Grid) model.PositionSet {
	return findRuns(grid.Cells(), grid.Width(), grid.Height())
}

// findRuns works on a row-major scratch slice so the enumerator can
// test swaps without building a Grid for each one. Empty cells never match.
func findRuns(cells []model.CellType, width, height int) model.PositionSet {
	found := make(model.PositionSet)

	// Rows
	for row := 0; row < height; row++ {
		start := 0
		for col := 1; col <= width; col++ {
			if col < width && cells[row*width+col] == cells[row*width+start] {
				continue
			}
			if col-start >= MinRunLength && !cells[row*width+start].IsEmpty() {
				for c := start; c < col; c++ {
					found.Add(model.Position{Row: row, Col: c})
				}
			}
			start = col
		}
	}

	// Columns
	for col := 0; col < width; col++ {
		start := 0
		for row := 1; row <= height; row++ {
			if row < height && cells[row*width+col] == cells[start*width+col] {
				continue
			}
			if row-start >= MinRunLength && !cells[start*width+col].IsEmpty() {
				for r := start; r < row; r++ {
					found.Add(model.Position{Row: r, Col: col})
				}
			}
			start = row
		}
	}

	return found
}
