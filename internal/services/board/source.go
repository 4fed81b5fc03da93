package board

import (
	"fmt"
	"slices"

	"github.com/mcoot/trio/internal/dependencies/random"
	"github.com/mcoot/trio/internal/model"
)

// CellSource produces the cells used to fill new boards and refill gaps
type CellSource interface {
	Next() model.CellType
}

// RandomSource draws cells uniformly from a palette
type RandomSource struct {
	random  random.Random
	palette []model.CellType
}

// NewRandomSource creates a CellSource over the given palette
func NewRandomSource(rnd random.Random, palette []model.CellType) (*RandomSource, error) {
	if len(palette) < 2 {
		return nil, fmt.Errorf("%w: got %d", model.ErrEmptyPalette, len(palette))
	}
	for _, c := range palette {
		if c.IsEmpty() {
			return nil, fmt.Errorf("%w: palette contains the empty cell", model.ErrUnknownCellType)
		}
	}
	return &RandomSource{
		random:  rnd,
		palette: slices.Clone(palette),
	}, nil
}

// Next returns palette[Intn(len(palette))]
func (s *RandomSource) Next() model.CellType {
	return s.palette[s.random.Intn(len(s.palette))]
}

// Palette returns a copy of the cell types this source draws from
func (s *RandomSource) Palette() []model.CellType {
	return slices.Clone(s.palette)
}
