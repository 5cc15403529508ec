package factory

import (
	"io"
	"log/slog"
	"time"

	"arcade/internal/dependencies/clock"
	"arcade/internal/dependencies/mocks"
	"arcade/internal/storage"
	"arcade/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with memory storage
// and a mocked clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// NewForTest creates an App with injected storage and clock, useful for
// tests that need a specific backend or a pre-seeded store
func NewForTest(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	return newWithDependencies(store, clk, logger)
}
