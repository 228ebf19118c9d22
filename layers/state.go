package layers

// State is the membership of the current run in a color's layer.
type State int

const (
	// Off runs skip pixels.
	Off State = iota
	// On runs paint pixels.
	On
)

// Toggle returns the opposite state.
func (s State) Toggle() State {
	if s == Off {
		return On
	}
	return Off
}

func (s State) String() string {
	if s == Off {
		return "off"
	}
	return "on"
}

// EndMarker terminates the run lengths of one color.
const EndMarker = '^'
