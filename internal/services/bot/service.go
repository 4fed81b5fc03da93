package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/trio/internal/dependencies/clock"
	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/board"
	"github.com/mcoot/trio/internal/services/scoring"
)

const (
	// MaxBotIterations is a safety limit for the PlayMatch loop
	MaxBotIterations = 1000
)

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionMove      BotActionType = "move"
	ActionPass      BotActionType = "pass"
	ActionReshuffle BotActionType = "reshuffle"
)

// BotAction represents a single action taken during PlayMatch
type BotAction struct {
	Type       BotActionType       `json:"type"`
	Turn       int                 `json:"turn"`
	Player     string              `json:"player"`
	Move       model.CandidateMove `json:"move,omitzero"`
	Score      int                 `json:"score"`
	Cascades   int                 `json:"cascades"`
	Reshuffled bool                `json:"reshuffled,omitempty"`
}

// Player is one seat in an autoplay match
type Player struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

// MatchResult is the record of a finished autoplay match
type MatchResult struct {
	Start     model.Grid          `json:"start"`
	Final     model.Grid          `json:"final"`
	Actions   []BotAction         `json:"actions"`
	Scores    []model.PlayerScore `json:"scores"` // Ranked, highest first
	Winner    string              `json:"winner"` // Empty on a tie
	Turns     int                 `json:"turns"`
	StartedAt time.Time           `json:"started_at"`
	Duration  time.Duration       `json:"duration"`
}

// Service plays bots against each other on a single board
type Service struct {
	boardService   *board.Service
	scoringService *scoring.Service
	strategies     map[string]Strategy
	clock          clock.Clock
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	boardService *board.Service,
	scoringService *scoring.Service,
	strategies map[string]Strategy,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		boardService:   boardService,
		scoringService: scoringService,
		strategies:     strategies,
		clock:          clk,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Suggest returns the move the named strategy would play on grid
func (s *Service) Suggest(grid model.Grid, strategy string) (model.CandidateMove, bool, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return model.CandidateMove{}, false, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}
	move, ok := st.ChooseMove(grid, s.boardService.PossibleMoves(grid))
	return move, ok, nil
}

// PlayNewMatch generates a board and plays a match on it
func (s *Service) PlayNewMatch(ctx context.Context, width, height int, players []Player, turns int) (*MatchResult, error) {
	start, err := s.boardService.Generate(width, height)
	if err != nil {
		return nil, err
	}
	return s.PlayMatch(ctx, start, players, turns)
}

// PlayMatch lets the players take turns in order on start until the
// requested number of turns has been played. A board with no scoring
// move is regenerated, which uses up the turn.
func (s *Service) PlayMatch(ctx context.Context, start model.Grid, players []Player, turns int) (*MatchResult, error) {
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}
	for _, p := range players {
		if _, ok := s.strategies[p.Strategy]; !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, p.Strategy)
		}
	}

	result := &MatchResult{
		Start:     start,
		StartedAt: s.clock.Now(),
	}
	tallies := make([]model.PlayerScore, len(players))
	for i, p := range players {
		tallies[i] = model.PlayerScore{Player: p.Name, Strategy: p.Strategy}
	}

	grid := start
	for turn := range min(turns, MaxBotIterations) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seat := turn % len(players)
		player := players[seat]
		candidates := s.boardService.PossibleMoves(grid)

		if len(candidates) == 0 {
			reshuffled, err := s.boardService.Generate(grid.Width(), grid.Height())
			if err != nil {
				return nil, err
			}
			grid = reshuffled
			result.Actions = append(result.Actions, BotAction{
				Type:       ActionReshuffle,
				Turn:       turn,
				Player:     player.Name,
				Reshuffled: true,
			})
			result.Turns++
			continue
		}

		move, ok := s.strategies[player.Strategy].ChooseMove(grid, candidates)
		if !ok {
			result.Actions = append(result.Actions, BotAction{Type: ActionPass, Turn: turn, Player: player.Name})
			result.Turns++
			continue
		}

		outcome, err := s.boardService.Move(grid, move.From, move.To)
		if err != nil {
			return nil, err
		}
		if !outcome.Accepted() {
			tallies[seat].Rejected++
		} else {
			tallies[seat].TotalScore += outcome.Score
			tallies[seat].Moves++
			grid = outcome.Final(grid)
		}

		result.Actions = append(result.Actions, BotAction{
			Type:       ActionMove,
			Turn:       turn,
			Player:     player.Name,
			Move:       move,
			Score:      outcome.Score,
			Cascades:   outcome.Cascades,
			Reshuffled: outcome.Reshuffled(),
		})
		result.Turns++

		s.logger.Info("bot moved",
			slog.Int("turn", turn),
			slog.String("player", player.Name),
			slog.String("from", move.From.String()),
			slog.String("to", move.To.String()),
			slog.Int("score", outcome.Score),
		)
	}

	result.Final = grid
	result.Scores = s.scoringService.RankPlayers(tallies)
	result.Winner = s.scoringService.DetermineWinner(result.Scores)
	result.Duration = s.clock.Since(result.StartedAt)

	s.logger.Info("match complete",
		slog.Int("turns", result.Turns),
		slog.String("winner", result.Winner),
	)

	return result, nil
}
