package main

import (
	"github.com/spf13/cobra"
)

func newUninstallCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove husk-installed Git hooks",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Remove Git hooks that husk installed.

Only hooks carrying husk's version marker are removed. Hooks written
by the user or another tool are reported and left untouched.`,
		Example: `  husk uninstall
  husk uninstall --root /src/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveRoot(root)
			if err != nil {
				return err
			}
			return runUninstall(cmd.Context(), projectRoot)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: $HUSK_PROJECT_ROOT or working directory)")

	return cmd
}
