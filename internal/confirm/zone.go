package confirm

import "math/rand"

// Zone placement bounds, as fractions of track length. The start is drawn
// uniformly from [ZoneStartMin, ZoneStartMax] and the zone spans ZoneWidth,
// clamped to the end of the track.
const (
	ZoneStartMin = 0.30
	ZoneStartMax = 0.70
	ZoneWidth    = 0.20
)

// Zone is the sub-range of progress within which a hard-mode release
// succeeds. Meaningless for other difficulties.
type Zone struct {
	Start float64
	End   float64
}

// NewZone draws a fresh target zone from r. Called once per hard-mode
// session: at machine construction and on every return to idle.
func NewZone(r *rand.Rand) Zone {
	start := ZoneStartMin + r.Float64()*(ZoneStartMax-ZoneStartMin)
	end := start + ZoneWidth
	if end > 1 {
		end = 1
	}
	return Zone{Start: start, End: end}
}

// Contains reports whether progress p lands inside the zone (inclusive).
func (z Zone) Contains(p float64) bool {
	return p >= z.Start && p <= z.End
}
