package kanban

import "math/rand/v2"

// Palette is the fixed set of colors new columns are drawn from.
var Palette = []string{
	"#6366f1", "#8b5cf6", "#ec4899", "#f43f5e",
	"#10b981", "#14b8a6", "#0ea5e9", "#f59e0b",
}

// ColorSource abstracts column color selection so tests are deterministic.
type ColorSource interface {
	Pick() string
}

// RandomColors picks uniformly at random from the palette.
type RandomColors struct{}

func (RandomColors) Pick() string { return Palette[rand.IntN(len(Palette))] }
