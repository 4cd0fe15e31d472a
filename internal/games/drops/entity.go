package drops

import "github.com/vovakirdan/tui-drops/internal/config"

// Kind distinguishes drops worth catching from drops to avoid.
type Kind int

const (
	KindGood Kind = iota
	KindBad
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	default:
		return "unknown"
	}
}

// Entity is a falling drop between spawn and resolution.
type Entity struct {
	Handle   EntityHandle
	Kind     Kind
	FallSecs float64 // Time to fall the full height
	Position float64 // Horizontal position as a fraction of the play width

	profile  config.Profile // Profile in effect when spawned; decides the score delta
	resolved bool
}

// Resolved reports whether the entity has been caught, expired or discarded.
func (e *Entity) Resolved() bool {
	return e.resolved
}

// resolve marks the entity resolved. Only the first call returns true.
func (e *Entity) resolve() bool {
	if e.resolved {
		return false
	}
	e.resolved = true
	return true
}

// delta returns the score change for catching this entity.
func (e *Entity) delta() int {
	if e.Kind == KindBad {
		return e.profile.BadDelta
	}
	return e.profile.GoodDelta
}
