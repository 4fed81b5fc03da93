package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/trio/internal/model"
)

func newGenerateCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a match-free board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = app.Settings.Board.Width
			}
			if !cmd.Flags().Changed("height") {
				height = app.Settings.Board.Height
			}
			if err := app.Settings.CheckSize(width, height); err != nil {
				return err
			}

			grid, err := app.BoardService.Generate(width, height)
			if err != nil {
				return err
			}
			out.Print(grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Board width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Board height (default from config)")

	return cmd
}

func newHintCmd() *cobra.Command {
	var gridText string
	var best bool

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "List the scoring swaps on a board, best last",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGridFlag(gridText)
			if err != nil {
				return err
			}

			moves := app.BoardService.PossibleMoves(grid)
			if best && len(moves) > 0 {
				moves = moves[len(moves)-1:]
			}
			out.Print(moves)
			return nil
		},
	}

	cmd.Flags().StringVar(&gridText, "grid", "", "Board in text form, e.g. RGB/GBR/BRG (required)")
	cmd.Flags().BoolVar(&best, "best", false, "Only show the highest scoring swap")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

func newMoveCmd() *cobra.Command {
	var gridText, fromText, toText string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Swap two adjacent cells and resolve the cascade",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGridFlag(gridText)
			if err != nil {
				return err
			}
			from, err := parsePosition(fromText)
			if err != nil {
				return err
			}
			to, err := parsePosition(toText)
			if err != nil {
				return err
			}
			if !grid.Contains(from) || !grid.Contains(to) {
				return fmt.Errorf("%w: %s <-> %s", model.ErrOutOfBounds, from, to)
			}
			if !from.IsAdjacent(to) {
				return fmt.Errorf("cells %s and %s are not adjacent", from, to)
			}

			outcome, err := app.BoardService.Move(grid, from, to)
			if err != nil {
				return err
			}
			out.Print(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&gridText, "grid", "", "Board in text form (required)")
	cmd.Flags().StringVar(&fromText, "from", "", "First cell as row,col (required)")
	cmd.Flags().StringVar(&toText, "to", "", "Second cell as row,col (required)")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseGridFlag parses a board and applies the configured size policy
func parseGridFlag(text string) (model.Grid, error) {
	grid, err := model.ParseGrid(text)
	if err != nil {
		return model.Grid{}, err
	}
	if err := app.Settings.CheckSize(grid.Width(), grid.Height()); err != nil {
		return model.Grid{}, err
	}
	return grid, nil
}

// parsePosition reads "row,col"
func parsePosition(s string) (model.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Position{}, fmt.Errorf("invalid position %q: expected row,col", s)
	}
	row, errRow := strconv.Atoi(strings.TrimSpace(parts[0]))
	col, errCol := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err := errors.Join(errRow, errCol); err != nil {
		return model.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return model.Position{Row: row, Col: col}, nil
}
