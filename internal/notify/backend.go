package notify

import "github.com/gen2brain/beeep"

// Backend defines the interface for the notification backend.
type Backend interface {
	// Alert sends an alert notification.
	Alert(title, message, iconPath string) error
}

// desktopBackend implements Backend by calling beeep directly.
type desktopBackend struct{}

// Alert implements Backend.
func (desktopBackend) Alert(title, message, iconPath string) error {
	return beeep.Alert(title, message, iconPath)
}

// newDesktopBackend returns a Backend that uses beeep.
func newDesktopBackend() Backend {
	return desktopBackend{}
}
