package dialog

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Defaults applied when an Options field is empty.
const (
	DefaultTitle       = "Are you sure?"
	DefaultConfirmText = "Confirm"
	DefaultCancelText  = "Cancel"
)

// ErrConfirmPending is returned by [Service.Confirm] while an earlier
// confirmation has not been resolved yet.
var ErrConfirmPending = errors.New("dialog: confirmation already pending")

// Options configures a confirm dialog invocation.
// Unrecognized needs are deliberately absent; empty fields fall back to
// the package defaults.
type Options struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.ConfirmText == "" {
		o.ConfirmText = DefaultConfirmText
	}
	if o.CancelText == "" {
		o.CancelText = DefaultCancelText
	}
	return o
}

// confirmModel is the singleton confirm dialog. The pending channel is
// the single outstanding-result slot: buffered so resolving never blocks
// the event loop, owned exclusively by this model.
type confirmModel struct {
	visible      bool
	title        string
	message      string
	confirmText  string
	cancelText   string
	focusConfirm bool // false = cancel button focused
	pending      chan bool
	keys         keyMap
}

// show makes the dialog visible and returns the deferred result.
// Focus starts on the cancel button so enter alone never triggers the
// destructive action. Returns ErrConfirmPending while an earlier result
// is still outstanding.
func (m *confirmModel) show(opts Options) (<-chan bool, error) {
	if m.pending != nil {
		return nil, ErrConfirmPending
	}

	opts = opts.withDefaults()
	m.title = opts.Title
	m.message = opts.Message
	m.confirmText = opts.ConfirmText
	m.cancelText = opts.CancelText
	m.focusConfirm = false
	m.visible = true
	m.pending = make(chan bool, 1)
	return m.pending, nil
}

// resolve fulfills the pending result exactly once and closes the dialog.
// Resolving an already-closed dialog is a no-op.
func (m *confirmModel) resolve(confirmed bool) {
	if m.pending != nil {
		m.pending <- confirmed
		m.pending = nil
	}
	m.visible = false
}

func (m *confirmModel) update(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.resolve(true)
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Dismiss):
		m.resolve(false)
	case key.Matches(msg, m.keys.Accept):
		m.resolve(m.focusConfirm)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.focusConfirm = !m.focusConfirm
	}
	return nil
}

func (m *confirmModel) view() string {
	var b strings.Builder

	b.WriteString(TitleStyle().Render(m.title))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(MessageStyle().Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var cancelBtn, confirmBtn string
	if m.focusConfirm {
		cancelBtn = ButtonStyle().Render("[ " + m.cancelText + " ]")
		confirmBtn = ButtonFocusedStyle().Render("[ " + m.confirmText + " ]")
	} else {
		cancelBtn = ButtonFocusedStyle().Render("[ " + m.cancelText + " ]")
		confirmBtn = ButtonStyle().Render("[ " + m.confirmText + " ]")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cancelBtn, "  ", confirmBtn))

	b.WriteString("\n")
	b.WriteString(HelpStyle().Render("←/→ move • enter choose • y/n • esc cancel"))

	return PanelStyle().Render(b.String())
}
