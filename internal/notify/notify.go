// Package notify provides the desktop notification fallback for dlg alerts.
package notify

import (
	"github.com/dlgdev/dlg/internal/config"
)

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Alert sends an alert notification with the given message.
	Alert(message string) error
}

// Option configures a Notifier.
type Option func(*notifier)

// WithBackend sets a custom notification backend (for testing).
func WithBackend(backend Backend) Option {
	return func(n *notifier) {
		n.backend = backend
	}
}

// notifier sends desktop notifications using the system notification service.
type notifier struct {
	enabled bool
	backend Backend
}

// Alert sends an alert notification. No-op when disabled by config.
func (n *notifier) Alert(message string) error {
	if !n.enabled {
		return nil
	}
	return n.backend.Alert("dlg", message, "")
}

// New creates a new Notifier based on the configuration.
func New(cfg config.NotifyConfig, opts ...Option) Notifier {
	n := &notifier{
		enabled: cfg.Desktop,
		backend: newDesktopBackend(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}
