package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/services/bot"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	color  bool
	cells  map[model.CellType]lipgloss.Style
	frame  lipgloss.Style
}

var cellColors = map[model.CellType]lipgloss.Color{
	model.CellRed:    lipgloss.Color("9"),
	model.CellGreen:  lipgloss.Color("10"),
	model.CellBlue:   lipgloss.Color("12"),
	model.CellYellow: lipgloss.Color("11"),
	model.CellPurple: lipgloss.Color("13"),
	model.CellOrange: lipgloss.Color("208"),
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer, color bool) *Output {
	renderer := lipgloss.NewRenderer(w)
	cells := make(map[model.CellType]lipgloss.Style, len(cellColors))
	for c, col := range cellColors {
		cells[c] = renderer.NewStyle().Foreground(col).Bold(true)
	}
	return &Output{
		format: format,
		w:      w,
		color:  color,
		cells:  cells,
		frame:  renderer.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Grid:
		o.printGrid(v, nil)
	case []model.CandidateMove:
		o.printMoves(v)
	case model.MoveOutcome:
		o.printOutcome(v)
	case *bot.MatchResult:
		o.printMatch(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// renderGrid draws one row per line; cleared cells are shown lowercase
func (o *Output) renderGrid(g model.Grid, cleared []model.Position) string {
	marked := model.PositionSet{}
	marked.Add(cleared...)

	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			pos := model.Position{Row: row, Col: col}
			c := g.At(pos)
			letter := string(c.Letter())
			if marked.Has(pos) {
				letter = strings.ToLower(letter)
			}
			if o.color {
				letter = o.cells[c].Render(letter)
			}
			sb.WriteString(letter)
		}
	}

	if o.color {
		return o.frame.Render(sb.String())
	}
	return sb.String()
}

func (o *Output) printGrid(g model.Grid, cleared []model.Position) {
	fmt.Fprintln(o.w, o.renderGrid(g, cleared))
}

func (o *Output) printMoves(moves []model.CandidateMove) {
	if len(moves) == 0 {
		fmt.Fprintln(o.w, "No scoring moves")
		return
	}
	for i, m := range moves {
		fmt.Fprintf(o.w, "%2d. %s <-> %s  score %d\n", i+1, m.From, m.To, m.Score)
	}
}

func (o *Output) printOutcome(outcome model.MoveOutcome) {
	if !outcome.Accepted() {
		fmt.Fprintln(o.w, "Move rejected: no run formed")
		return
	}
	fmt.Fprintf(o.w, "Move accepted: score %d in %d cascade(s)\n", outcome.Score, outcome.Cascades)
	for i, step := range outcome.Steps {
		fmt.Fprintf(o.w, "\nStep %d: %s\n", i+1, step.Kind)
		o.printGrid(step.Grid, step.Cleared)
	}
}

func (o *Output) printMatch(r *bot.MatchResult) {
	fmt.Fprintln(o.w, "Start:")
	o.printGrid(r.Start, nil)

	for _, a := range r.Actions {
		switch a.Type {
		case bot.ActionMove:
			line := fmt.Sprintf("turn %2d  %-10s %s <-> %s  +%d", a.Turn+1, a.Player, a.Move.From, a.Move.To, a.Score)
			if a.Cascades > 1 {
				line += fmt.Sprintf(" (%d cascades)", a.Cascades)
			}
			if a.Reshuffled {
				line += " [reshuffled]"
			}
			fmt.Fprintln(o.w, line)
		case bot.ActionReshuffle:
			fmt.Fprintf(o.w, "turn %2d  %-10s no moves, board regenerated\n", a.Turn+1, a.Player)
		case bot.ActionPass:
			fmt.Fprintf(o.w, "turn %2d  %-10s passed\n", a.Turn+1, a.Player)
		}
	}

	fmt.Fprintln(o.w, "\nFinal:")
	o.printGrid(r.Final, nil)

	fmt.Fprintln(o.w, "\nScores:")
	for _, s := range r.Scores {
		fmt.Fprintf(o.w, "  %-10s %-8s %5d  (%d moves)\n",
			s.Player, model.BotStrategyDisplayName(s.Strategy), s.TotalScore, s.Moves)
	}
	if r.Winner == "" {
		fmt.Fprintln(o.w, "Result: tie")
	} else {
		fmt.Fprintf(o.w, "Winner: %s\n", r.Winner)
	}
}
