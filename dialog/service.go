package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Service owns the two singleton dialogs. Construct one per program and
// share it; every invocation mutates the existing dialog instead of
// creating a new one.
//
// All methods must be called from the bubbletea event loop; the Service
// does no locking of its own.
type Service struct {
	width  int
	height int

	alert   alertModel
	confirm confirmModel
}

// NewService creates a dialog service.
// The size is updated from WindowSizeMsg once the program is running.
func NewService() *Service {
	keys := defaultKeyMap()
	return &Service{
		width:   80,
		height:  24,
		alert:   alertModel{keys: keys},
		confirm: confirmModel{keys: keys},
	}
}

// Alert opens the alert dialog with the given message.
// The message is coerced to its string form; nil maps to the empty
// string. Fire-and-forget: there is no result.
func (s *Service) Alert(message any) {
	s.alert.show(message)
}

// Confirm opens the confirm dialog and returns a channel that receives
// the outcome exactly once: true if the confirm button closed the
// dialog, false for cancel, Escape, or a backdrop click.
//
// Only one confirmation may be outstanding; a second call before the
// first resolves returns ErrConfirmPending and leaves the earlier
// request untouched.
func (s *Service) Confirm(opts Options) (<-chan bool, error) {
	return s.confirm.show(opts)
}

// Active returns true while any dialog is visible.
// Hosts typically suspend their own key handling while Active.
func (s *Service) Active() bool {
	return s.alert.visible || s.confirm.visible
}

// SetSize updates the area the overlay is centered in.
func (s *Service) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update processes a message. The second return value reports whether
// the message was consumed by a visible dialog; hosts should skip their
// own handling when it is true. WindowSizeMsg is observed but never
// consumed so the host can resize as well.
func (s *Service) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return nil, false

	case tea.KeyPressMsg:
		// The confirm dialog is topmost when both are visible.
		if s.confirm.visible {
			return s.confirm.update(msg), true
		}
		if s.alert.visible {
			return s.alert.update(msg), true
		}

	case tea.MouseClickMsg:
		if !s.Active() {
			return nil, false
		}
		if msg.Button == tea.MouseLeft && !s.panelHit(msg.X, msg.Y) {
			// Backdrop click closes the topmost dialog.
			if s.confirm.visible {
				s.confirm.resolve(false)
			} else {
				s.alert.hide()
			}
		}
		return nil, true
	}

	return nil, false
}

// Overlay renders the topmost dialog centered over the given background.
// Returns the background unchanged while no dialog is visible.
func (s *Service) Overlay(background string) string {
	if !s.Active() {
		return background
	}

	panel := s.topPanel()

	bgLayer := lipgloss.NewLayer(background)
	panelLayer := lipgloss.NewLayer(panel)

	x, y := s.panelOrigin(panel)
	panelLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCanvas(bgLayer, panelLayer).Render()
}

func (s *Service) topPanel() string {
	if s.confirm.visible {
		return s.confirm.view()
	}
	return s.alert.view()
}

// panelOrigin returns the top-left cell of the centered panel.
func (s *Service) panelOrigin(panel string) (x, y int) {
	x = max(0, (s.width-lipgloss.Width(panel))/2)
	y = max(0, (s.height-lipgloss.Height(panel))/2)
	return x, y
}

// panelHit reports whether the cell at x, y lies inside the panel.
// Everything outside is backdrop.
func (s *Service) panelHit(x, y int) bool {
	panel := s.topPanel()
	x0, y0 := s.panelOrigin(panel)
	return x >= x0 && x < x0+lipgloss.Width(panel) &&
		y >= y0 && y < y0+lipgloss.Height(panel)
}
