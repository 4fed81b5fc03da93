package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseGrid reads a grid from its text form: one letter per cell, rows
// separated by '/' or newlines. Blank rows and surrounding spaces are ignored.
func ParseGrid(text string) (Grid, error) {
	var rows []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '/' || r == '\n' }) {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	return GridFromRows(rows)
}

// GridFromRows builds a grid from equal-length rows of cell letters
func GridFromRows(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	cells := make([]CellType, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidDimensions, i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			c, err := CellTypeFromLetter(row[j])
			if err != nil {
				return Grid{}, err
			}
			cells = append(cells, c)
		}
	}
	return NewGrid(width, len(rows), cells)
}

// Rows returns the text form of each row
func (g Grid) Rows() []string {
	rows := make([]string, g.height)
	for row := 0; row < g.height; row++ {
		var sb strings.Builder
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			sb.WriteByte(c.Letter())
		}
		rows[row] = sb.String()
	}
	return rows
}

// String returns the rows joined by '/'
func (g Grid) String() string {
	return strings.Join(g.Rows(), "/")
}

type gridJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// MarshalJSON encodes the grid as its dimensions plus text rows
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Width: g.width, Height: g.height, Rows: g.Rows()})
}

// UnmarshalJSON decodes the form written by MarshalJSON
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := GridFromRows(raw.Rows)
	if err != nil {
		return err
	}
	if parsed.width != raw.Width || parsed.height != raw.Height {
		return fmt.Errorf("%w: declared %dx%d, rows are %dx%d",
			ErrInvalidDimensions, raw.Width, raw.Height, parsed.width, parsed.height)
	}
	*g = parsed
	return nil
}
