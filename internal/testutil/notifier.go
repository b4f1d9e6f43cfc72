package testutil

import (
	"sync"

	"kb-go/internal/kanban"
)

// RecordingNotifier captures notifications so tests can assert on toasts.
type RecordingNotifier struct {
	mu    sync.Mutex
	Toast []kanban.Notification
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(toast kanban.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Toast = append(n.Toast, toast)
}

// Last returns the most recent notification, or a zero Notification if none
// were emitted.
func (n *RecordingNotifier) Last() kanban.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Toast) == 0 {
		return kanban.Notification{}
	}
	return n.Toast[len(n.Toast)-1]
}

// Count returns the number of notifications emitted so far.
func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Toast)
}

var _ kanban.Notifier = (*RecordingNotifier)(nil)

// StubColorSource always picks the same color.
type StubColorSource struct {
	Color string
}

func (s StubColorSource) Pick() string { return s.Color }

var _ kanban.ColorSource = StubColorSource{}
