package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/trio/internal/config"
	"github.com/mcoot/trio/internal/factory"
)

var (
	cfg *Config
	app *factory.App
	out *Output
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "trio",
		Short: "Match-3 board engine",
		Long: `trio generates match-3 boards, resolves swaps with their cascades,
lists the scoring moves on a board and plays bots against each other.

Boards are written one letter per cell (R G B Y P O), rows separated by '/':

  trio hint --grid RRGY/BGRO/YYBY/GBPO
  trio move --grid RRGY/BGRO/YYBY/GBPO --from 2,2 --to 2,3`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("unknown output format %q: use text or json", cfg.Output)
			}

			settings, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return err
			}

			app, err = factory.New(factory.Config{
				Settings: settings,
				Seed:     cfg.Seed,
				Logger:   newLogger(cfg, cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}

			out = NewOutput(cfg.Output, cmd.OutOrStdout(), !cfg.NoColor)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file path (env: TRIO_CONFIG)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed, 0 = config seed or random (env: TRIO_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output (env: NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newHintCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newAutoplayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
