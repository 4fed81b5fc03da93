// Package config provides YAML-based configuration for board sizes,
// cell costs and autoplay matches.
package config

import (
	"errors"
	"fmt"

	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/scoring"
)

// Config is the full application configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Cells    []CellConfig   `yaml:"cells"`
	Seed     uint64         `yaml:"seed"` // 0 = non-deterministic
	Autoplay AutoplayConfig `yaml:"autoplay"`
}

// BoardConfig holds the default board size and the allowed size range.
// The range is a caller policy; the engine itself accepts any positive size.
type BoardConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// CellConfig puts one cell type in the palette with its cost.
type CellConfig struct {
	Type string `yaml:"type"`
	Cost int    `yaml:"cost"`
}

// AutoplayConfig holds defaults for bot matches.
type AutoplayConfig struct {
	Turns   int            `yaml:"turns"`
	Players []PlayerConfig `yaml:"players"`
}

// PlayerConfig is one bot seat.
type PlayerConfig struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
}

// DefaultConfig returns the hardcoded configuration used when the
// embedded YAML cannot be read.
func DefaultConfig() Config {
	table := scoring.DefaultTable()
	cells := make([]CellConfig, 0, len(table))
	for _, c := range model.AllCellTypes() {
		cells = append(cells, CellConfig{Type: c.String(), Cost: table[c]})
	}
	return Config{
		Board: BoardConfig{Width: 8, Height: 8, MinSize: 3, MaxSize: 8},
		Cells: cells,
		Autoplay: AutoplayConfig{
			Turns: 20,
			Players: []PlayerConfig{
				{Name: "greedy", Strategy: model.BotStrategyGreedy},
				{Name: "random", Strategy: model.BotStrategyRandom},
			},
		},
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Board.MinSize < 1 || c.Board.MaxSize < c.Board.MinSize {
		return fmt.Errorf("%w: size range %d..%d", model.ErrInvalidDimensions, c.Board.MinSize, c.Board.MaxSize)
	}
	if err := c.CheckSize(c.Board.Width, c.Board.Height); err != nil {
		return err
	}

	if _, err := c.CostTable(); err != nil {
		return err
	}

	if c.Autoplay.Turns <= 0 {
		return errors.New("autoplay turns must be positive")
	}
	for _, p := range c.Autoplay.Players {
		if !validStrategy(p.Strategy) {
			return fmt.Errorf("%w: %s", model.ErrUnknownStrategy, p.Strategy)
		}
	}
	return nil
}

// CheckSize enforces the configured size range on both axes.
func (c Config) CheckSize(width, height int) error {
	for _, n := range []int{width, height} {
		if n < c.Board.MinSize || n > c.Board.MaxSize {
			return fmt.Errorf("%w: %dx%d outside %d..%d",
				model.ErrInvalidDimensions, width, height, c.Board.MinSize, c.Board.MaxSize)
		}
	}
	return nil
}

// CostTable converts the palette into a scoring table.
func (c Config) CostTable() (scoring.Table, error) {
	table := scoring.Table{}
	for _, cell := range c.Cells {
		t, err := model.ParseCellType(cell.Type)
		if err != nil {
			return nil, err
		}
		if cell.Cost <= 0 {
			return nil, fmt.Errorf("cell %s: cost must be positive, got %d", t, cell.Cost)
		}
		if _, dup := table[t]; dup {
			return nil, fmt.Errorf("cell %s listed twice", t)
		}
		table[t] = cell.Cost
	}
	if len(table) < 2 {
		return nil, fmt.Errorf("%w: got %d", model.ErrEmptyPalette, len(table))
	}
	return table, nil
}

func validStrategy(name string) bool {
	for _, s := range model.ValidBotStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
