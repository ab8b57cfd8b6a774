package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dlgdev/dlg/dialog"
	"github.com/dlgdev/dlg/internal/config"
	"github.com/dlgdev/dlg/internal/log"
	"github.com/dlgdev/dlg/internal/output"
)

func newConfirmCmd() *cobra.Command {
	var title, message, confirmText, cancelText string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Ask a yes/no question with a confirm dialog",
		Long: `Show a confirm overlay with a title, message and two buttons.

Focus starts on the cancel button. The result is printed to stdout
("true" or "false") and reflected in the exit code: 0 when confirmed,
1 otherwise, so the command composes with && and ||.

Flag defaults can be set in the [dialog] section of the config file.`,
		Example: `  dlg confirm --message "Delete build artifacts?" && rm -rf build
  dlg confirm --title "Deploy?" --confirm-text "Ship it" --cancel-text "Abort"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if !stderrIsTerminal() {
				return fmt.Errorf("confirm requires a terminal on stderr")
			}

			opts := confirmOptions(cfg.Dialog, title, message, confirmText, cancelText)
			l.Debug("opening dialog", "kind", "confirm", "title", opts.Title)

			confirmed, err := dialog.RunConfirm(opts)
			if err != nil {
				return err
			}

			out.Println(strconv.FormatBool(confirmed))
			if !confirmed {
				return errNotConfirmed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Dialog title (default \"Are you sure?\")")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Dialog message")
	cmd.Flags().StringVar(&confirmText, "confirm-text", "", "Confirm button label (default \"Confirm\")")
	cmd.Flags().StringVar(&cancelText, "cancel-text", "", "Cancel button label (default \"Cancel\")")

	return cmd
}

// confirmOptions merges flag values with config defaults.
// Flags win; empty values fall through to the dialog package defaults.
func confirmOptions(defaults config.DialogConfig, title, message, confirmText, cancelText string) dialog.Options {
	opts := dialog.Options{
		Title:       title,
		Message:     message,
		ConfirmText: confirmText,
		CancelText:  cancelText,
	}
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.ConfirmText == "" {
		opts.ConfirmText = defaults.ConfirmText
	}
	if opts.CancelText == "" {
		opts.CancelText = defaults.CancelText
	}
	return opts
}
