package model

import (
	"fmt"
	"slices"
)

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// String formats the position as "row,col"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// IsAdjacent reports whether q is an orthogonal neighbour of p
func (p Position) IsAdjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Grid is an immutable rectangular board of cells.
// Every operation that changes cells returns a new Grid.
type Grid struct {
	width  int
	height int
	cells  []CellType // Row-major: cells[row*width+col]
}

// NewGrid builds a grid from row-major cells. The slice is copied.
// Every cell must be a placeable type.
func NewGrid(width, height int, cells []CellType) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(cells) != width*height {
		return Grid{}, fmt.Errorf("%w: %dx%d grid given %d cells", ErrInvalidDimensions, width, height, len(cells))
	}
	for i, c := range cells {
		if c.IsEmpty() {
			return Grid{}, fmt.Errorf("%w: at %s", ErrEmptyCell, Position{Row: i / width, Col: i % width})
		}
	}
	return Grid{width: width, height: height, cells: slices.Clone(cells)}, nil
}

// Width returns the number of columns
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g Grid) Height() int {
	return g.height
}

// IsZero reports whether g is the zero Grid
func (g Grid) IsZero() bool {
	return g.width == 0 && g.height == 0
}

// Contains returns true if the position is within bounds
func (g Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// Get returns the cell at the given position
func (g Grid) Get(pos Position) (CellType, error) {
	if !g.Contains(pos) {
		return CellEmpty, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, pos, g.width, g.height)
	}
	return g.cells[pos.Row*g.width+pos.Col], nil
}

// At returns the cell at the given position, or CellEmpty when out of bounds
func (g Grid) At(pos Position) CellType {
	if !g.Contains(pos) {
		return CellEmpty
	}
	return g.cells[pos.Row*g.width+pos.Col]
}

// Cells returns a row-major copy of the cells
func (g Grid) Cells() []CellType {
	return slices.Clone(g.cells)
}

// WithCellsReplaced returns a copy of g with the given cells overwritten
func (g Grid) WithCellsReplaced(replacements map[Position]CellType) (Grid, error) {
	cells := slices.Clone(g.cells)
	for pos, c := range replacements {
		if !g.Contains(pos) {
			return Grid{}, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, pos, g.width, g.height)
		}
		if c.IsEmpty() {
			return Grid{}, fmt.Errorf("%w: at %s", ErrEmptyCell, pos)
		}
		cells[pos.Row*g.width+pos.Col] = c
	}
	return Grid{width: g.width, height: g.height, cells: cells}, nil
}

// Swap returns a copy of g with the cells at a and b exchanged
func (g Grid) Swap(a, b Position) (Grid, error) {
	ca, err := g.Get(a)
	if err != nil {
		return Grid{}, err
	}
	cb, err := g.Get(b)
	if err != nil {
		return Grid{}, err
	}
	return g.WithCellsReplaced(map[Position]CellType{a: cb, b: ca})
}

// Equal reports whether both grids have the same shape and cells
func (g Grid) Equal(other Grid) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}

// Row returns a copy of the cells in the given row
func (g Grid) Row(row int) []CellType {
	if row < 0 || row >= g.height {
		return nil
	}
	return slices.Clone(g.cells[row*g.width : (row+1)*g.width])
}

// Col returns a copy of the cells in the given column, top to bottom
func (g Grid) Col(col int) []CellType {
	if col < 0 || col >= g.width {
		return nil
	}
	result := make([]CellType, g.height)
	for row := 0; row < g.height; row++ {
		result[row] = g.cells[row*g.width+col]
	}
	return result
}

// PositionSet is an unordered set of grid positions
type PositionSet map[Position]struct{}

// Add inserts positions into the set
func (s PositionSet) Add(positions ...Position) {
	for _, p := range positions {
		s[p] = struct{}{}
	}
}

// Has reports whether pos is in the set
func (s PositionSet) Has(pos Position) bool {
	_, ok := s[pos]
	return ok
}

// Sorted returns the positions in row-major order
func (s PositionSet) Sorted() []Position {
	result := make([]Position, 0, len(s))
	for p := range s {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return result
}
