package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dlgdev/dlg/dialog"
	"github.com/dlgdev/dlg/internal/config"
	"github.com/dlgdev/dlg/internal/log"
	"github.com/dlgdev/dlg/internal/notify"
	"github.com/dlgdev/dlg/internal/output"
)

func newAlertCmd() *cobra.Command {
	var desktop bool

	cmd := &cobra.Command{
		Use:   "alert [message...]",
		Short: "Show an alert dialog",
		Long: `Show an alert overlay with a message and a single OK button.

The dialog closes on enter, escape, or a click outside the panel.
When stderr is not a terminal (or with --desktop) the message is sent
as a desktop notification instead.`,
		Example: `  dlg alert "Backup finished"
  long-running-job; dlg alert "job done (exit $?)"
  dlg alert --desktop "Build failed"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			message := strings.Join(args, " ")

			if desktop || !stderrIsTerminal() {
				l.Debug("sending desktop notification", "message", message)
				n := notify.New(cfg.Notify)
				if err := n.Alert(message); err != nil {
					return fmt.Errorf("send notification: %w", err)
				}
				if !cfg.Notify.Desktop {
					// Fallback disabled in config: the message is the
					// primary output, echo it on stdout.
					output.FromContext(ctx).Println(message)
				}
				return nil
			}

			l.Debug("opening dialog", "kind", "alert")
			return dialog.RunAlert(message)
		},
	}

	cmd.Flags().BoolVar(&desktop, "desktop", false, "Send a desktop notification instead of drawing the dialog")

	return cmd
}

// stderrIsTerminal reports whether the TUI can be drawn.
// The dialogs render to stderr so stdout stays pipeable.
func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
