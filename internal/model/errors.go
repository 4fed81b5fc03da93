package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrUnknownCellType   = errors.New("unknown cell type")
	ErrEmptyCell         = errors.New("grid cell is empty")

	// Engine errors
	ErrEmptyPalette = errors.New("cell palette needs at least two cell types")
	ErrCascadeLimit = errors.New("cascade did not settle within the iteration limit")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrNoPlayers       = errors.New("autoplay needs at least one player")
)
