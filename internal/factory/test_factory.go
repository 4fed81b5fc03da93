package factory

import (
	"time"

	"github.com/mcoot/trio/internal/config"
	"github.com/mcoot/trio/internal/dependencies/mocks"
	"github.com/mcoot/trio/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random source serves both cell refills and bot choices.
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(config.DefaultConfig(), mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		panic(err) // default config is always valid
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
