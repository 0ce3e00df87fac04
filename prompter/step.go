package prompter

// State is a snapshot of the scroll animation.
type State struct {
	Playing  bool
	Position float64
	Speed    float64
}

// Step tells the host loop whether to schedule another frame.
type Step int

const (
	Continue Step = iota
	Stop
)

func (s Step) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// MaxScroll is the furthest offset that still shows content. It is never negative.
func MaxScroll(contentHeight, visibleHeight float64) float64 {
	if m := contentHeight - visibleHeight; m > 0 {
		return m
	}
	return 0
}

// Advance moves s forward by one frame. A stopped state is returned unchanged
// with Stop. Reaching maxScroll pins the position there and stops playback.
func Advance(s State, maxScroll float64) (State, Step) {
	if !s.Playing {
		return s, Stop
	}

	s.Position += s.Speed
	if s.Position >= maxScroll {
		s.Position = maxScroll
		s.Playing = false
		return s, Stop
	}
	if s.Position < 0 {
		s.Position = 0
	}
	return s, Continue
}
