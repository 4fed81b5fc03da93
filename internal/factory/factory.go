package factory

import (
	"log/slog"

	"github.com/mcoot/trio/internal/config"
	"github.com/mcoot/trio/internal/dependencies/clock"
	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/services/board"
	"github.com/mcoot/trio/internal/services/bot"
	"github.com/mcoot/trio/internal/services/scoring"
)

// App contains all wired application components
type App struct {
	Settings config.Config

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Source         *board.RandomSource
	ScoringService *scoring.Service
	BoardService   *board.Service
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Settings is the loaded application configuration (optional)
	// If zero value, config.DefaultConfig() is used
	Settings config.Config
	// Seed makes every random draw reproducible (optional)
	// If 0, Settings.Seed is used; if that is also 0, crypto randomness is used
	Seed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	settings := cfg.Settings
	if len(settings.Cells) == 0 {
		settings = config.DefaultConfig()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = settings.Seed
	}

	// Create external dependencies
	var rnd random.Random
	if seed != 0 {
		rnd = random.NewSeeded(seed)
		logger.Debug("using seeded randomness", slog.Uint64("seed", seed))
	} else {
		rnd = random.New()
	}

	return newWithDependencies(settings, clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(settings config.Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	table, err := settings.CostTable()
	if err != nil {
		return nil, err
	}

	// Create services
	scoringService := scoring.New(table)
	source, err := board.NewRandomSource(rnd, scoringService.Palette())
	if err != nil {
		return nil, err
	}
	boardService := board.New(source, scoringService, logger)
	botService := bot.NewService(boardService, scoringService, bot.DefaultStrategies(rnd), clk, logger)

	return &App{
		Settings:       settings,
		Clock:          clk,
		Random:         rnd,
		Source:         source,
		ScoringService: scoringService,
		BoardService:   boardService,
		BotService:     botService,
	}, nil
}
