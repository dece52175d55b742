package confirm

import "fmt"

// Difficulty selects the completion policy applied to a session.
type Difficulty int

const (
	// Easy completes as soon as the handle reaches the end of the track.
	Easy Difficulty = iota
	// Medium is Easy under a countdown: the end must be reached in time.
	Medium
	// Hard requires releasing the handle inside a randomized target zone
	// before the countdown expires.
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Timed reports whether this difficulty runs a countdown while dragging.
func (d Difficulty) Timed() bool {
	return d == Medium || d == Hard
}

// ParseDifficulty converts a string (flag or stored preference) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}
