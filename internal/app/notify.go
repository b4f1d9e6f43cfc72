package app

import (
	"fmt"
	"io"

	"kb-go/internal/kanban"
)

// ToastWriter renders notifications as terminal lines: the CLI's stand-in for
// the board UI's toast popups. Destructive toasts go to errOut with a marker.
type ToastWriter struct {
	out    io.Writer
	errOut io.Writer
}

// NewToastWriter creates a ToastWriter over the given streams.
func NewToastWriter(out, errOut io.Writer) *ToastWriter {
	return &ToastWriter{out: out, errOut: errOut}
}

func (t *ToastWriter) Notify(n kanban.Notification) {
	w := t.out
	marker := ""
	if n.Variant == kanban.VariantDestructive {
		w = t.errOut
		marker = "! "
	}
	fmt.Fprintf(w, "%s%s: %s\n", marker, n.Title, n.Description)
}

var _ kanban.Notifier = (*ToastWriter)(nil)
