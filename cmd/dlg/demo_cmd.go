package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/dlgdev/dlg/dialog"
	"github.com/dlgdev/dlg/internal/ui/styles"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive showcase of the dialog overlays",
		Long: `Run a small demo application with both dialogs embedded:

  s       open an alert ("Saved!")
  d       confirm removing the selected item
  up/down move the selection
  q       quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stderrIsTerminal() {
				return fmt.Errorf("demo requires a terminal")
			}

			m := newDemoModel()
			p := tea.NewProgram(m)
			_, err := p.Run()
			return err
		},
	}
}

// confirmResultMsg carries a resolved confirmation back into the demo.
type confirmResultMsg bool

// awaitConfirm blocks in a command goroutine until the dialog resolves.
func awaitConfirm(result <-chan bool) tea.Cmd {
	return func() tea.Msg {
		return confirmResultMsg(<-result)
	}
}

type demoModel struct {
	svc    *dialog.Service
	width  int
	height int

	items   []string
	cursor  int
	pending int // index awaiting confirmation
	events  []string
}

func newDemoModel() demoModel {
	return demoModel{
		svc:     dialog.NewService(),
		items:   []string{"weekly-report.pdf", "holiday-photos.zip", "notes.txt", "backup-2026-08.tar"},
		pending: -1,
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	// Dialogs consume input while visible.
	if cmd, handled := m.svc.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case confirmResultMsg:
		item := m.items[m.pending]
		if bool(msg) {
			m.items = append(m.items[:m.pending], m.items[m.pending+1:]...)
			if m.cursor >= len(m.items) && m.cursor > 0 {
				m.cursor--
			}
			m.events = append(m.events, "removed "+item)
		} else {
			m.events = append(m.events, "kept "+item)
		}
		m.pending = -1
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "s":
			m.svc.Alert("Saved!")
		case "d":
			if len(m.items) == 0 {
				m.svc.Alert("Nothing left to remove")
				return m, nil
			}
			result, err := m.svc.Confirm(dialog.Options{
				Message:     fmt.Sprintf("Remove %q?", m.items[m.cursor]),
				ConfirmText: "Remove",
				CancelText:  "Keep",
			})
			if err != nil {
				// A confirmation is already pending; ignore the request.
				return m, nil
			}
			m.pending = m.cursor
			return m, awaitConfirm(result)
		}
	}

	return m, nil
}

func (m demoModel) View() tea.View {
	var b strings.Builder

	b.WriteString(styles.Bold.Render("dlg demo"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(styles.AccentStyle.Render("> " + item))
		} else {
			b.WriteString(styles.NormalStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(styles.MutedStyle.Render("  (empty)"))
		b.WriteString("\n")
	}

	if len(m.events) > 0 {
		b.WriteString("\n")
		for _, e := range m.events {
			b.WriteString(styles.InfoStyle.Render(e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("s alert • d remove • ↑/↓ move • q quit"))

	background := lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())

	v := tea.NewView(m.svc.Overlay(background))
	v.AltScreen = true
	// Mouse reporting is a view property; needed for backdrop clicks.
	v.MouseMode = tea.MouseModeCellMotion
	return v
}
