package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dlgdev/dlg/internal/config"
	"github.com/dlgdev/dlg/internal/log"
	"github.com/dlgdev/dlg/internal/output"
	"github.com/dlgdev/dlg/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// errNotConfirmed signals "user said no" from the confirm command.
// Mapped to exit code 1 without an error message, so teardown in
// Execute still runs before the process exits.
var errNotConfirmed = errors.New("not confirmed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dlg",
	Short: "Styled alert and confirm dialogs for the terminal",
	Long: `dlg shows styled, non-blocking alert and confirm overlays in the
terminal, replacing ad-hoc y/N prompts in shell scripts.

The confirm result is printed to stdout and reflected in the exit code,
so it composes with && and ||.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := &loadedCfg

	// Apply theme before any UI is drawn
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Logger (stderr for diagnostics), printer (stdout for primary data)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)
	ctx = config.WithConfig(ctx, cfg)

	rootCmd.SetContext(ctx)

	err = rootCmd.Execute()
	cancel()
	if code := exitCode(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit code, reporting it
// on stderr. errNotConfirmed exits 1 silently: the confirm command has
// already printed its result to stdout.
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errNotConfirmed) {
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newAlertCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newInitCmd())
}
