package model

import (
	"fmt"
	"strings"
)

// CellType identifies the kind of tile occupying a grid cell.
// Costs are not part of the type; see the scoring package.
type CellType uint8

// Cell types. CellEmpty never appears in a Grid handed to callers.
const (
	CellEmpty CellType = iota
	CellRed
	CellGreen
	CellBlue
	CellYellow
	CellPurple
	CellOrange
)

var cellNames = map[CellType]string{
	CellEmpty:  "empty",
	CellRed:    "red",
	CellGreen:  "green",
	CellBlue:   "blue",
	CellYellow: "yellow",
	CellPurple: "purple",
	CellOrange: "orange",
}

var cellLetters = map[CellType]byte{
	CellEmpty:  '.',
	CellRed:    'R',
	CellGreen:  'G',
	CellBlue:   'B',
	CellYellow: 'Y',
	CellPurple: 'P',
	CellOrange: 'O',
}

// AllCellTypes returns every placeable cell type in declaration order
func AllCellTypes() []CellType {
	return []CellType{CellRed, CellGreen, CellBlue, CellYellow, CellPurple, CellOrange}
}

// String returns the lowercase name of the cell type
func (c CellType) String() string {
	if name, ok := cellNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Letter returns the single-character form used by the text codec
func (c CellType) Letter() byte {
	if l, ok := cellLetters[c]; ok {
		return l
	}
	return '?'
}

// IsEmpty reports whether c is the empty marker
func (c CellType) IsEmpty() bool {
	return c == CellEmpty
}

// ParseCellType accepts either a cell name ("red") or its letter ("R").
func ParseCellType(s string) (CellType, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return CellTypeFromLetter(s[0])
	}
	lower := strings.ToLower(s)
	for _, c := range AllCellTypes() {
		if cellNames[c] == lower {
			return c, nil
		}
	}
	return CellEmpty, fmt.Errorf("%w: %q", ErrUnknownCellType, s)
}

// CellTypeFromLetter maps a letter of the text codec back to its cell type
func CellTypeFromLetter(b byte) (CellType, error) {
	upper := b
	if upper >= 'a' && upper <= 'z' {
		upper -= 'a' - 'A'
	}
	for _, c := range AllCellTypes() {
		if cellLetters[c] == upper {
			return c, nil
		}
	}
	return CellEmpty, fmt.Errorf("%w: %q", ErrUnknownCellType, string(b))
}

// MarshalText implements encoding.TextMarshaler
func (c CellType) MarshalText() ([]byte, error) {
	if c == CellEmpty {
		return nil, fmt.Errorf("%w: empty cell", ErrUnknownCellType)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CellType) UnmarshalText(text []byte) error {
	parsed, err := ParseCellType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
