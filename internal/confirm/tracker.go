package confirm

// NudgeStep is the progress delta applied per directional key press.
const NudgeStep = 0.05

// Tracker converts raw pointer coordinates into normalized progress along
// the track. It is a pure coordinate transform: it never decides whether a
// session completes and never fires callbacks.
type Tracker struct {
	progress   float64
	maxTravel  float64
	grabOffset float64
}

// Begin captures track geometry at gesture start. The grab offset is
// measured against the handle's current position so the handle does not
// jump under the pointer.
func (t *Tracker) Begin(pointerX, trackLeft, trackWidth, handleSize float64) {
	t.maxTravel = trackWidth - handleSize
	t.grabOffset = pointerX - trackLeft - t.progress*t.maxTravel
}

// Update recomputes progress from a pointer position. On degenerate
// geometry (non-positive travel) it is a no-op rather than dividing by
// zero.
func (t *Tracker) Update(pointerX, trackLeft float64) {
	if t.maxTravel <= 0 {
		return
	}
	raw := pointerX - trackLeft - t.grabOffset
	t.progress = clamp(raw, 0, t.maxTravel) / t.maxTravel
}

// Nudge shifts progress by delta, bypassing geometry entirely. Used for
// keyboard input; delta is usually ±NudgeStep.
func (t *Tracker) Nudge(delta float64) {
	t.progress = clamp(t.progress+delta, 0, 1)
}

// Progress returns the current normalized progress in [0, 1].
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Reset clears progress and captured geometry.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
