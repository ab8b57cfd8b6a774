package dialog

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// runModel hosts a Service over a blank backdrop for the standalone
// runners. The program quits once the dialog resolves.
type runModel struct {
	svc *Service
}

func (m runModel) Init() tea.Cmd {
	return nil
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "ctrl+c" {
		// Abort without resolving; RunConfirm treats this as false.
		return m, tea.Quit
	}

	cmd, handled := m.svc.Update(msg)
	if handled && !m.svc.Active() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m runModel) View() tea.View {
	content := ""
	if m.svc.Active() {
		content = m.svc.Overlay("")
	}

	v := tea.NewView(content)
	// Mouse reporting is a view property; without it no click
	// messages are delivered and backdrop clicks cannot close.
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// runProgram runs the given service as its own bubbletea program.
// The TUI renders to stderr so stdout remains available for piping.
func runProgram(svc *Service) error {
	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(runModel{svc: svc},
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	_, err := p.Run()
	return err
}

// RunAlert shows the alert dialog as a standalone program and returns
// once it is dismissed.
func RunAlert(message any) error {
	svc := NewService()
	svc.Alert(message)
	return runProgram(svc)
}

// RunConfirm shows the confirm dialog as a standalone program and
// returns the user's choice. Aborting the program (ctrl+c) counts as
// not confirmed.
func RunConfirm(opts Options) (bool, error) {
	svc := NewService()
	result, err := svc.Confirm(opts)
	if err != nil {
		return false, err
	}

	if err := runProgram(svc); err != nil {
		return false, err
	}

	select {
	case confirmed := <-result:
		return confirmed, nil
	default:
		// Program ended without a closing interaction.
		return false, nil
	}
}
