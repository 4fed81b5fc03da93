package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/trio/internal/model"
)

// Move swaps a and b and resolves every cascade that follows.
//
// Adjacency is the caller's concern; a non-adjacent swap is performed
// as asked. A swap that clears nothing comes back as a rejected outcome
// with no steps. If the settled board has no profitable move left, a
// freshly generated board is appended as a reshuffle step.
func (s *Service) Move(grid model.Grid, a, b model.Position) (model.MoveOutcome, error) {
	current, err := grid.Swap(a, b)
	if err != nil {
		return model.MoveOutcome{}, err
	}

	var steps []model.ResolutionStep
	score := 0
	cascades := 0
	for {
		deletions := FindDeletions(current)
		if len(deletions) == 0 {
			break
		}
		if cascades >= MaxCascadeIterations {
			return model.MoveOutcome{}, fmt.Errorf("%w: swap %s <-> %s", model.ErrCascadeLimit, a, b)
		}
		cascades++

		score += s.scoring.ScoreCells(current, deletions)
		steps = append(steps, model.ResolutionStep{
			Kind:    model.StepClear,
			Grid:    current,
			Cleared: deletions.Sorted(),
		})

		current, err = Settle(current, deletions, s.source)
		if err != nil {
			return model.MoveOutcome{}, err
		}
		steps = append(steps, model.ResolutionStep{
			Kind: model.StepSettle,
			Grid: current,
		})
	}

	if score == 0 {
		s.logger.Debug("move rejected",
			slog.String("from", a.String()),
			slog.String("to", b.String()),
		)
		return model.RejectedMove(), nil
	}

	if len(s.PossibleMoves(current)) == 0 {
		reshuffled, err := Generate(current.Width(), current.Height(), s.source)
		if err != nil {
			return model.MoveOutcome{}, err
		}
		steps = append(steps, model.ResolutionStep{
			Kind: model.StepReshuffle,
			Grid: reshuffled,
		})
		s.logger.Debug("board reshuffled", slog.Int("cascades", cascades))
	}

	s.logger.Debug("move resolved",
		slog.String("from", a.String()),
		slog.String("to", b.String()),
		slog.Int("score", score),
		slog.Int("cascades", cascades),
	)

	return model.MoveOutcome{
		Status:   model.MoveAccepted,
		Steps:    steps,
		Score:    score,
		Cascades: cascades,
	}, nil
}
