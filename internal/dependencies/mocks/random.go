package mocks

import (
	"github.com/mcoot/trio/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Queued results are reduced modulo n so a queue can be shared by
// callers asking for different ranges.
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Cycle replays the queue from the start once it is exhausted
	Cycle bool
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if n <= 0 || len(r.IntnResults) == 0 {
		return 0
	}
	if r.intnIndex >= len(r.IntnResults) {
		if !r.Cycle {
			return 0
		}
		r.intnIndex = 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result % n
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Remaining returns how many queued results have not been consumed
func (r *MockRandom) Remaining() int {
	return len(r.IntnResults) - r.intnIndex
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Cycle = false
}
