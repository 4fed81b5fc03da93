package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/board"
	"github.com/mcoot/trio/internal/services/bot"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	home       string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "trio-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/trio")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		home:       t.TempDir(),
	}
}

func (r *cliRunner) run(args ...string) ([]byte, error) {
	fullArgs := append([]string{"--output", "json"}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Dir = r.home
	cmd.Env = append(os.Environ(), "HOME="+r.home, "TRIO_CONFIG=", "TRIO_SEED=")
	return cmd.Output()
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestCLIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the CLI binary")
	}
	cli := newCLIRunner(t)

	// Generate a board, then feed its text form back through hint and move
	out, err := cli.run("generate", "--seed", "99", "--width", "7", "--height", "7")
	require.NoError(t, err)
	var grid model.Grid
	require.NoError(t, json.Unmarshal(out, &grid))
	assert.Empty(t, board.FindDeletions(grid))

	out, err = cli.run("hint", "--grid", grid.String())
	require.NoError(t, err)
	var moves []model.CandidateMove
	require.NoError(t, json.Unmarshal(out, &moves))

	if len(moves) == 0 {
		t.Skip("generated board has no scoring move")
	}
	best := moves[len(moves)-1]

	out, err = cli.run("move", "--seed", "99", "--grid", grid.String(),
		"--from", best.From.String(), "--to", best.To.String())
	require.NoError(t, err)
	var outcome model.MoveOutcome
	require.NoError(t, json.Unmarshal(out, &outcome))
	assert.True(t, outcome.Accepted())
	assert.GreaterOrEqual(t, outcome.Score, best.Score)
	assert.Empty(t, board.FindDeletions(outcome.Final(grid)))
}

func TestCLIConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the CLI binary")
	}
	cli := newCLIRunner(t)

	path := filepath.Join(t.TempDir(), "trio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
board: {width: 4, height: 5}
cells:
  - {type: red, cost: 1}
  - {type: blue, cost: 1}
  - {type: green, cost: 1}
autoplay:
  turns: 3
`), 0o600))

	out, err := cli.run("--config", path, "--seed", "5", "autoplay")
	require.NoError(t, err)

	var result bot.MatchResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, 4, result.Start.Width())
	assert.Equal(t, 5, result.Start.Height())
	assert.Equal(t, 3, result.Turns)
}
