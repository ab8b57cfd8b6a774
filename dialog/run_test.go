package dialog

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestRunModel_MouseReporting(t *testing.T) {
	t.Parallel()

	// Without cell motion reporting no MouseClickMsg is ever delivered,
	// so backdrop clicks could not close the dialog.
	svc := NewService()
	svc.Alert("Saved!")
	m := runModel{svc: svc}

	if v := m.View(); v.MouseMode != tea.MouseModeCellMotion {
		t.Errorf("MouseMode = %v, want MouseModeCellMotion", v.MouseMode)
	}

	_, _ = svc.Update(keyPress("esc"))

	// Stays enabled on the final empty frame too.
	if v := m.View(); v.MouseMode != tea.MouseModeCellMotion {
		t.Error("MouseMode should stay enabled while the program runs")
	}
}

func TestRunModel_CtrlCQuits(t *testing.T) {
	t.Parallel()

	svc := NewService()
	result, err := svc.Confirm(Options{})
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	m := runModel{svc: svc}

	_, cmd := m.Update(keyPress("ctrl+c"))

	if cmd == nil {
		t.Fatal("ctrl+c should produce a quit command")
	}
	if _, ok := recv(t, result); ok {
		t.Error("abort must not resolve the pending result")
	}
}
