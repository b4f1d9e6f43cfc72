package testutil

import (
	"kb-go/internal/kanban"
	"kb-go/internal/store"
)

// NewTestStore creates a memory-backed document store for testing.
func NewTestStore() *kanban.DocumentStore {
	return kanban.NewDocumentStore(store.NewMemoryBackend())
}

// NewTestService creates a Service over a fresh memory-backed store with
// deterministic dependencies, returning the notifier for toast assertions.
func NewTestService() (*kanban.Service, *RecordingNotifier) {
	notifier := NewRecordingNotifier()
	svc := kanban.NewService(
		NewTestStore(),
		notifier,
		kanban.NewNopLogger(),
		FixedClock(),
		NewStubIDGenerator(),
		StubColorSource{Color: "#6366f1"},
	)
	return svc, notifier
}
