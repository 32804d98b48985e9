package main

import (
	"github.com/spf13/cobra"

	"github.com/jmeyers/husk/internal/config"
)

func newInstallCmd() *cobra.Command {
	var (
		root      string
		events    []string
		runTests  bool
		runLint   bool
		commands  []string
		userHooks bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install Git hooks into the current repository",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Install Git hooks for the repository containing the project root.

Without flags this installs the default: a pre-push hook that runs the
test suite. --hook replaces the default event selection; --run-tests,
--run-lint and --command control what the hooks execute. An optional
.husk.toml at the project root adds per-repository commands on top.

With --user-hooks the event and command flags are ignored and the
executable scripts in .husk/hooks/ are installed verbatim instead,
each stamped with husk's version marker.

Existing hooks not written by husk are left untouched and reported.
Hooks stamped by an older (or newer) husk version are rewritten.`,
		Example: `  husk install                               # pre-push hook running the test suite
  husk install --hook pre-commit --run-lint  # lint + tests before every commit
  husk install --command "golangci-lint run" # append an extra check
  husk install --user-hooks                  # scripts from .husk/hooks/
  HUSK_PROJECT_ROOT=/src/app husk install    # build-system invocation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveRoot(root)
			if err != nil {
				return err
			}

			features := config.Features{
				RunTests: runTests,
				RunLint:  runLint,
				Extra:    commands,
			}
			if cmd.Flags().Changed("hook") {
				if err := applyEvents(&features, events); err != nil {
					return err
				}
			} else {
				features.PrePush = true
			}

			return runInstall(cmd.Context(), installOptions{
				root:      projectRoot,
				features:  features,
				version:   resolveToolVersion(),
				userHooks: userHooks,
			})
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: $HUSK_PROJECT_ROOT or working directory)")
	cmd.Flags().StringSliceVar(&events, "hook", nil, "Hook events to install (pre-commit, pre-push, post-merge)")
	cmd.Flags().BoolVar(&runTests, "run-tests", true, "Run the test suite in installed hooks")
	cmd.Flags().BoolVar(&runLint, "run-lint", false, "Run go vet in installed hooks")
	cmd.Flags().StringArrayVar(&commands, "command", nil, "Extra command appended to every installed hook (repeatable)")
	cmd.Flags().BoolVar(&userHooks, "user-hooks", false, "Install the scripts in .husk/hooks/ instead of generated hooks")

	return cmd
}

// applyEvents maps --hook values onto the feature record.
func applyEvents(f *config.Features, names []string) error {
	for _, name := range names {
		ev, err := config.ParseEvent(name)
		if err != nil {
			return err
		}
		switch ev {
		case config.PreCommit:
			f.PreCommit = true
		case config.PrePush:
			f.PrePush = true
		case config.PostMerge:
			f.PostMerge = true
		}
	}
	return nil
}
