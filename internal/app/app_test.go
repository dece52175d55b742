package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
)

func TestConfirmCountIncrements(t *testing.T) {
	m := newAppModel(Options{})

	updated, _ := m.Update(components.ResolvedMsg{Outcome: components.OutcomeSuccess})
	am := updated.(AppModel)
	if am.confirms != 1 {
		t.Errorf("confirms = %d, want 1", am.confirms)
	}

	updated, _ = am.Update(components.ResolvedMsg{Outcome: components.OutcomeMiss})
	am = updated.(AppModel)
	if am.confirms != 1 {
		t.Errorf("confirms after miss = %d, want 1", am.confirms)
	}
}

func TestEscOnHomeStays(t *testing.T) {
	m := newAppModel(Options{})

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	am := updated.(AppModel)
	if cmd != nil {
		t.Error("esc at the home screen should be a no-op")
	}
	if am.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", am.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}
