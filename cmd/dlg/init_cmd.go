package main

import (
	"github.com/spf13/cobra"

	"github.com/dlgdev/dlg/internal/config"
	"github.com/dlgdev/dlg/internal/log"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a commented default config file at ~/.config/dlg/config.toml.

Fails if the file already exists unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}

			l := log.FromContext(cmd.Context())
			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}
