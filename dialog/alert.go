package dialog

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atotto/clipboard"
)

// alertModel is the singleton alert dialog: a message and a single
// acknowledgement button. Opening mutates the shared instance, it is
// never recreated.
type alertModel struct {
	visible bool
	message string
	keys    keyMap
}

// show makes the dialog visible with the given message.
// A call while already visible replaces the message.
func (m *alertModel) show(message any) {
	m.message = coerceMessage(message)
	m.visible = true
}

// hide closes the dialog. Hiding an already-hidden dialog is a no-op.
func (m *alertModel) hide() {
	m.visible = false
}

func (m *alertModel) update(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Accept), key.Matches(msg, m.keys.Dismiss):
		m.hide()
	case key.Matches(msg, m.keys.Copy):
		if m.message != "" {
			// Clipboard may be unavailable (headless, no xclip);
			// the dialog stays usable either way.
			_ = clipboard.WriteAll(m.message)
		}
	}
	return nil
}

func (m *alertModel) view() string {
	var b strings.Builder

	if m.message != "" {
		b.WriteString(MessageStyle().Render(m.message))
		b.WriteString("\n\n")
	}
	b.WriteString(ButtonFocusedStyle().Render("[ OK ]"))
	b.WriteString("\n")
	b.WriteString(HelpStyle().Render("enter dismiss • c copy • esc close"))

	return PanelStyle().Render(b.String())
}

// coerceMessage renders any value as its string form.
// A nil message maps to the empty string.
func coerceMessage(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
