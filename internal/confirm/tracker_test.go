package confirm

import "testing"

func TestTrackerUpdateClampsProgress(t *testing.T) {
	var tr Tracker
	tr.Begin(10, 10, 110, 10) // maxTravel = 100, grabOffset = 0

	tests := []struct {
		pointerX float64
		want     float64
	}{
		{10, 0},     // at track start
		{60, 0.5},   // halfway
		{110, 1},    // at travel end
		{500, 1},    // far past the end
		{-200, 0},   // far before the start
		{35, 0.25},  // quarter
		{85, 0.75},  // three quarters
	}

	for _, tt := range tests {
		tr.Update(tt.pointerX, 10)
		if got := tr.Progress(); got != tt.want {
			t.Errorf("Update(%v): progress = %v, want %v", tt.pointerX, got, tt.want)
		}
	}
}

func TestTrackerGrabOffsetPreventsJump(t *testing.T) {
	var tr Tracker
	tr.Nudge(0.5) // handle already halfway before the grab

	// Grab the handle at its current position: pointer sits at
	// trackLeft + 0.5*maxTravel.
	tr.Begin(50, 0, 110, 10)

	// Without moving the pointer, progress must not change.
	tr.Update(50, 0)
	if got := tr.Progress(); got != 0.5 {
		t.Errorf("progress after grab without movement = %v, want 0.5", got)
	}

	// Moving the pointer by 25 moves progress by 0.25.
	tr.Update(75, 0)
	if got := tr.Progress(); got != 0.75 {
		t.Errorf("progress after +25 = %v, want 0.75", got)
	}
}

func TestTrackerDegenerateGeometryIsNoop(t *testing.T) {
	var tr Tracker
	tr.Nudge(0.3)
	tr.Begin(0, 0, 5, 10) // maxTravel = -5

	tr.Update(100, 0)
	if got := tr.Progress(); got != 0.3 {
		t.Errorf("progress after update on degenerate geometry = %v, want 0.3", got)
	}
}

func TestTrackerNudgeBounds(t *testing.T) {
	var tr Tracker

	tr.Nudge(-NudgeStep)
	if got := tr.Progress(); got != 0 {
		t.Errorf("progress after nudge below zero = %v, want 0", got)
	}

	for i := 0; i < 30; i++ {
		tr.Nudge(NudgeStep)
	}
	if got := tr.Progress(); got != 1 {
		t.Errorf("progress after nudging past one = %v, want 1", got)
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	tr.Begin(10, 0, 110, 10)
	tr.Update(60, 0)
	tr.Reset()

	if got := tr.Progress(); got != 0 {
		t.Errorf("progress after reset = %v, want 0", got)
	}

	// Geometry is gone too: updates are no-ops until the next Begin.
	tr.Update(60, 0)
	if got := tr.Progress(); got != 0 {
		t.Errorf("progress after update without geometry = %v, want 0", got)
	}
}
