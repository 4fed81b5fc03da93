package board

import (
	"log/slog"

	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/scoring"
)

// Service binds the match engine to a cell source and a cost table.
// It keeps no board state: every call works on the grid it is given.
// The source is not synchronised, so calls sharing one Service must be
// serialised by the caller.
type Service struct {
	source  CellSource
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new BoardService
func New(source CellSource, scoringService *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		source:  source,
		scoring: scoringService,
		logger:  logger.With(slog.String("component", "board-service")),
	}
}

// Generate creates a match-free board
func (s *Service) Generate(width, height int) (model.Grid, error) {
	grid, err := Generate(width, height, s.source)
	if err != nil {
		return model.Grid{}, err
	}
	s.logger.Debug("board generated", slog.Int("width", width), slog.Int("height", height))
	return grid, nil
}

// FindDeletions returns the positions that would be cleared on grid
func (s *Service) FindDeletions(grid model.Grid) model.PositionSet {
	return FindDeletions(grid)
}

// PossibleMoves ranks every scoring swap on grid, best last
func (s *Service) PossibleMoves(grid model.Grid) []model.CandidateMove {
	return PossibleMoves(grid, s.scoring.Cost)
}

// BestMove returns the highest scoring swap, if any
func (s *Service) BestMove(grid model.Grid) (model.CandidateMove, bool) {
	moves := s.PossibleMoves(grid)
	if len(moves) == 0 {
		return model.CandidateMove{}, false
	}
	return moves[len(moves)-1], true
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(width, height int) (model.Grid, error)
	Move(grid model.Grid, a, b model.Position) (model.MoveOutcome, error)
	FindDeletions(grid model.Grid) model.PositionSet
	PossibleMoves(grid model.Grid) []model.CandidateMove
	BestMove(grid model.Grid) (model.CandidateMove, bool)
}

var _ ServiceInterface = (*Service)(nil)
