package scoring

import (
	"slices"
	"sort"

	"github.com/mcoot/trio/internal/model"
)

// Table maps each cell type to the points awarded when it is cleared
type Table map[model.CellType]int

// DefaultTable returns the stock cost table covering every cell type
func DefaultTable() Table {
	return Table{
		model.CellRed:    10,
		model.CellGreen:  10,
		model.CellBlue:   10,
		model.CellYellow: 15,
		model.CellPurple: 20,
		model.CellOrange: 25,
	}
}

// Service turns cleared cells into points
type Service struct {
	costs Table
}

// New creates a new ScoringService. The table is copied.
func New(costs Table) *Service {
	owned := make(Table, len(costs))
	for c, v := range costs {
		owned[c] = v
	}
	return &Service{
		costs: owned,
	}
}

// Cost returns the points for a single cell, 0 for unknown types
func (s *Service) Cost(c model.CellType) int {
	return s.costs[c]
}

// Palette returns the cell types that have a cost, in declaration order
func (s *Service) Palette() []model.CellType {
	palette := make([]model.CellType, 0, len(s.costs))
	for c := range s.costs {
		palette = append(palette, c)
	}
	slices.Sort(palette)
	return palette
}

// ScoreCells sums the cost of every listed cell on the grid
func (s *Service) ScoreCells(grid model.Grid, cells model.PositionSet) int {
	total := 0
	for pos := range cells {
		total += s.Cost(grid.At(pos))
	}
	return total
}

// RankPlayers returns the scores sorted by total, highest first.
// Players with equal totals keep their input order.
func (s *Service) RankPlayers(scores []model.PlayerScore) []model.PlayerScore {
	ranked := slices.Clone(scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	return ranked
}

// DetermineWinner returns the winning player, or empty string if tie
func (s *Service) DetermineWinner(ranked []model.PlayerScore) string {
	if len(ranked) == 0 {
		return ""
	}

	topScore := ranked[0].TotalScore
	tieCount := 0
	for _, score := range ranked {
		if score.TotalScore == topScore {
			tieCount++
		}
	}

	if tieCount > 1 {
		return "" // Tie
	}

	return ranked[0].Player
}

// Interface for dependency injection
type ServiceInterface interface {
	Cost(c model.CellType) int
	Palette() []model.CellType
	ScoreCells(grid model.Grid, cells model.PositionSet) int
	RankPlayers(scores []model.PlayerScore) []model.PlayerScore
	DetermineWinner(ranked []model.PlayerScore) string
}

var _ ServiceInterface = (*Service)(nil)
