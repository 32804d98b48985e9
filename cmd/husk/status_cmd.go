package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the state of Git hooks",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Show, for every known hook event, whether a hook is installed,
outdated (stamped by a different husk version), foreign (written by
something else), or missing.`,
		Example: `  husk status
  husk status --root /src/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveRoot(root)
			if err != nil {
				return err
			}
			styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			return runStatus(cmd.Context(), projectRoot, styled)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: $HUSK_PROJECT_ROOT or working directory)")

	return cmd
}
