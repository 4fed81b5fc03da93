// trio is a command-line front end for the match-3 board engine.
//
// Usage:
//
//	trio generate [--width N --height N]          - Generate a match-free board
//	trio hint --grid G [--best]                   - List scoring swaps, best last
//	trio move --grid G --from r,c --to r,c        - Resolve a swap and its cascades
//	trio autoplay [--player name:strategy ...]    - Play bots against each other
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.trio/config.yaml, ./configs/trio.yaml)
//	--seed <value>   - RNG seed for reproducible boards
//	-o text|json     - Output format
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mcoot/trio/internal/cli"
)

func main() {
	// Interrupting a long autoplay stops it between turns
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.Execute(ctx)
}
