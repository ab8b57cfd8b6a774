// Package dialog provides non-blocking alert and confirm overlays for
// terminal applications.
//
// The package replaces blocking prompt helpers with modal overlays drawn
// on top of the host view. A [Service] owns one alert dialog and one
// confirm dialog, both created once and reused for every invocation.
//
// # Embedding
//
// Hosts running their own bubbletea program embed a Service: forward
// messages through [Service.Update] (which consumes input while a dialog
// is visible) and wrap the rendered view with [Service.Overlay]:
//
//	svc := dialog.NewService()
//	// in Update:
//	if cmd, handled := m.svc.Update(msg); handled {
//		return m, cmd
//	}
//	// in View:
//	return tea.NewView(m.svc.Overlay(background))
//
// # Standalone
//
// [RunAlert] and [RunConfirm] run a dialog as its own bubbletea program
// for callers that are not already inside one (e.g. the dlg CLI).
//
// # Results
//
// Alerts are fire-and-forget. [Service.Confirm] returns a channel that
// receives the boolean outcome exactly once: true only when the confirm
// button closed the dialog; cancel, Escape and backdrop clicks all
// deliver false. Only one confirmation may be outstanding at a time;
// a second request is rejected with [ErrConfirmPending].
package dialog
