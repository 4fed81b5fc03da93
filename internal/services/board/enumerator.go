package board

import (
	"slices"

	"github.com/mcoot/trio/internal/model"
)

// PossibleMoves lists every adjacent swap whose immediate result contains
// a run, scored by the cost of the cells that run would clear. Cascades
// after the first clear are not counted. Moves are sorted by score,
// ascending, with ties in discovery order (row-major, right then down);
// the best move is last.
func PossibleMoves(grid model.Grid, cost func(model.CellType) int) []model.CandidateMove {
	width, height := grid.Width(), grid.Height()
	cells := grid.Cells()
	moves := []model.CandidateMove{}

	try := func(from, to model.Position) {
		i, j := from.Row*width+from.Col, to.Row*width+to.Col
		cells[i], cells[j] = cells[j], cells[i]
		defer func() { cells[i], cells[j] = cells[j], cells[i] }()

		deletions := findRuns(cells, width, height)
		if len(deletions) == 0 {
			return
		}
		score := 0
		for pos := range deletions {
			score += cost(cells[pos.Row*width+pos.Col])
		}
		if score > 0 {
			moves = append(moves, model.CandidateMove{From: from, To: to, Score: score})
		}
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			from := model.Position{Row: row, Col: col}
			if col < width-1 {
				try(from, model.Position{Row: row, Col: col + 1})
			}
			if row < height-1 {
				try(from, model.Position{Row: row + 1, Col: col})
			}
		}
	}

	slices.SortStableFunc(moves, func(a, b model.CandidateMove) int {
		return a.Score - b.Score
	})
	return moves
}
