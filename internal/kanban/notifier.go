package kanban

import "time"

// Variant classifies a notification for display purposes.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a user-facing toast. The service emits one per successful
// mutation (and per rejected input); how it is rendered is the caller's
// concern.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

// Notifier is the sink for user-facing notifications.
type Notifier interface {
	Notify(n Notification)
}

// NopNotifier discards all notifications. Use in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}
