package core

// Signal is a semantic input event, abstracted from physical keys.
// Adapters map whatever they poll to one of these; anything unmapped is
// SignalNoOp.
type Signal int

const (
	SignalNoOp Signal = iota
	SignalStart
	SignalPause
	SignalTerminate
	SignalAction // rotate for tetromino, extra move for snake
	SignalLeft
	SignalRight
	SignalUp
	SignalDown
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNoOp:
		return "NoOp"
	case SignalStart:
		return "Start"
	case SignalPause:
		return "Pause"
	case SignalTerminate:
		return "Terminate"
	case SignalAction:
		return "Action"
	case SignalLeft:
		return "Left"
	case SignalRight:
		return "Right"
	case SignalUp:
		return "Up"
	case SignalDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the signal is one of the four arrows.
func (s Signal) IsDirection() bool {
	return s >= SignalLeft && s <= SignalDown
}
