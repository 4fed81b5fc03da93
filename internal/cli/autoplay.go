package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/trio/internal/services/bot"
)

func newAutoplayCmd() *cobra.Command {
	var width, height, turns int
	var playerSpecs []string

	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Play bots against each other on a generated board",
		Long: `Play bots against each other on a generated board.

Players are given as name:strategy and take turns in the order listed:

  trio autoplay --player alice:greedy --player bob:random --turns 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.Settings
			if !cmd.Flags().Changed("width") {
				width = settings.Board.Width
			}
			if !cmd.Flags().Changed("height") {
				height = settings.Board.Height
			}
			if !cmd.Flags().Changed("turns") {
				turns = settings.Autoplay.Turns
			}
			if err := settings.CheckSize(width, height); err != nil {
				return err
			}

			var players []bot.Player
			if len(playerSpecs) == 0 {
				for _, p := range settings.Autoplay.Players {
					players = append(players, bot.Player{Name: p.Name, Strategy: p.Strategy})
				}
			} else {
				for _, spec := range playerSpecs {
					p, err := parsePlayer(spec)
					if err != nil {
						return err
					}
					players = append(players, p)
				}
			}

			result, err := app.BotService.PlayNewMatch(cmd.Context(), width, height, players, turns)
			if err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Board width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Board height (default from config)")
	cmd.Flags().IntVar(&turns, "turns", 0, "Number of turns (default from config)")
	cmd.Flags().StringArrayVar(&playerSpecs, "player", nil, "Player as name:strategy, repeatable (default from config)")

	return cmd
}

// parsePlayer reads "name:strategy"; a bare strategy is also its name
func parsePlayer(spec string) (bot.Player, error) {
	name, strategy, found := strings.Cut(spec, ":")
	if !found {
		strategy = name
	}
	if name == "" || strategy == "" {
		return bot.Player{}, fmt.Errorf("invalid player %q: expected name:strategy", spec)
	}
	return bot.Player{Name: name, Strategy: strategy}, nil
}
