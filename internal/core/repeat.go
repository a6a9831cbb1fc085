package core

// KeyRepeat turns how long a key has been down, counted in adapter updates,
// into repeated presses. The first update fires, then nothing until Delay,
// then every Interval updates.
type KeyRepeat struct {
	Delay    int
	Interval int
}

// Fires reports whether a key down for frames updates fires this update.
func (r KeyRepeat) Fires(frames int) bool {
	if frames == 1 {
		return true
	}
	if frames < r.Delay || r.Interval <= 0 {
		return false
	}
	return (frames-r.Delay)%r.Interval == 0
}

// Action decides what the Action key sends this update. The first press is a
// plain Action. Repeats are held Actions and are only sent when holdable is
// true, so games that treat Action as a one-shot (rotation) get one per press.
func (r KeyRepeat) Action(frames int, holdable bool) (fire, held bool) {
	if frames == 1 {
		return true, false
	}
	if !holdable || !r.Fires(frames) {
		return false, false
	}
	return true, true
}
