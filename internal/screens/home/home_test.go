package home

import (
	"testing"

	"github.com/sohandillikar/statue-confirmation-component/internal/store"
)

func TestMergePrefs(t *testing.T) {
	stored := &store.Preferences{Difficulty: "medium", TimeLimitMs: 900, ResetDelayMs: 1200}

	tests := []struct {
		name      string
		overrides *store.Preferences
		want      store.Preferences
	}{
		{
			name: "nil overrides keep stored",
			want: *stored,
		},
		{
			name:      "difficulty only",
			overrides: &store.Preferences{Difficulty: "hard"},
			want:      store.Preferences{Difficulty: "hard", TimeLimitMs: 900, ResetDelayMs: 1200},
		},
		{
			name:      "time limit only",
			overrides: &store.Preferences{TimeLimitMs: 500},
			want:      store.Preferences{Difficulty: "medium", TimeLimitMs: 500, ResetDelayMs: 1200},
		},
		{
			name:      "full override",
			overrides: &store.Preferences{Difficulty: "easy", TimeLimitMs: 2000, ResetDelayMs: 100},
			want:      store.Preferences{Difficulty: "easy", TimeLimitMs: 2000, ResetDelayMs: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergePrefs(stored, tt.overrides)
			if got == nil || *got != tt.want {
				t.Errorf("mergePrefs = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergePrefsNoStored(t *testing.T) {
	overrides := &store.Preferences{Difficulty: "hard"}
	got := mergePrefs(nil, overrides)
	if got == nil || got.Difficulty != "hard" {
		t.Errorf("mergePrefs = %+v, want hard", got)
	}

	if mergePrefs(nil, nil) != nil {
		t.Error("expected nil when nothing is set")
	}
}

func TestDifficultyPreselectsMenu(t *testing.T) {
	h := New(nil, nil, &store.Preferences{Difficulty: "hard"})
	if h.menu.Selected != 2 {
		t.Errorf("selected = %d, want 2 (hard)", h.menu.Selected)
	}

	h = New(nil, nil, nil)
	if h.menu.Selected != 0 {
		t.Errorf("selected = %d, want 0", h.menu.Selected)
	}
}
