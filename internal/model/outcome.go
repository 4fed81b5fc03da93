package model

// StepKind labels a resolution step for replay
type StepKind string

const (
	// StepClear shows the grid with the positions about to be removed
	StepClear StepKind = "clear"
	// StepSettle shows the grid after gravity and refill
	StepSettle StepKind = "settle"
	// StepReshuffle replaces a board that has no profitable move left
	StepReshuffle StepKind = "reshuffle"
)

// ResolutionStep is one snapshot in the replay of a move.
// Grid is always fully populated; for StepClear, Cleared lists the
// positions removed from it in row-major order.
type ResolutionStep struct {
	Kind    StepKind   `json:"kind"`
	Grid    Grid       `json:"grid"`
	Cleared []Position `json:"cleared,omitempty"`
}

// MoveStatus says whether a swap was kept
type MoveStatus string

const (
	MoveAccepted MoveStatus = "accepted"
	MoveRejected MoveStatus = "rejected"
)

// MoveOutcome is the result of resolving one swap
type MoveOutcome struct {
	Status   MoveStatus       `json:"status"`
	Steps    []ResolutionStep `json:"steps"`
	Score    int              `json:"score"`
	Cascades int              `json:"cascades"`
}

// RejectedMove returns the outcome of a swap that scored nothing
func RejectedMove() MoveOutcome {
	return MoveOutcome{Status: MoveRejected, Steps: []ResolutionStep{}}
}

// Accepted reports whether the swap scored and should be kept
func (o MoveOutcome) Accepted() bool {
	return o.Status == MoveAccepted
}

// Reshuffled reports whether the board was regenerated at the end of the move
func (o MoveOutcome) Reshuffled() bool {
	return len(o.Steps) > 0 && o.Steps[len(o.Steps)-1].Kind == StepReshuffle
}

// Final returns the grid the caller should adopt after the move.
// A rejected move leaves the starting grid in place.
func (o MoveOutcome) Final(start Grid) Grid {
	if !o.Accepted() || len(o.Steps) == 0 {
		return start
	}
	return o.Steps[len(o.Steps)-1].Grid
}

// CandidateMove is a swap that would score from a given grid
type CandidateMove struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Score int      `json:"score"`
}
