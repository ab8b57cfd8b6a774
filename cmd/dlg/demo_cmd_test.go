package main

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestDemoModel_View(t *testing.T) {
	t.Parallel()

	m := newDemoModel()

	v := m.View()

	if !v.AltScreen {
		t.Error("demo should run in the alternate screen buffer")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Errorf("MouseMode = %v, want MouseModeCellMotion", v.MouseMode)
	}
}

func TestDemoModel_ConfirmFlow(t *testing.T) {
	t.Parallel()

	press := func(m demoModel, key string) demoModel {
		var r rune
		for _, c := range key {
			r = c
			break
		}
		next, _ := m.Update(tea.KeyPressMsg{Code: r, Text: key})
		return next.(demoModel)
	}

	m := newDemoModel()
	items := len(m.items)

	m = press(m, "d")
	if !m.svc.Active() {
		t.Fatal("d should open the confirm dialog")
	}

	// y resolves the dialog; the removal lands via confirmResultMsg.
	m = press(m, "y")
	next, _ := m.Update(confirmResultMsg(true))
	m = next.(demoModel)

	if len(m.items) != items-1 {
		t.Errorf("items = %d, want %d after confirmed removal", len(m.items), items-1)
	}
	if m.pending != -1 {
		t.Error("pending index should be cleared")
	}
}
