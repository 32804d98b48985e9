package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmeyers/husk/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		root     string
		events   []string
		commands []string
		force    bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create a .husk.toml project file",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Create a .husk.toml at the project root.

On a terminal without flags this opens an interactive form to pick hook
events and commands. With --hook/--command (or when stdin is not a
terminal) the file is written directly from the flags.`,
		Example: `  husk init                                  # interactive form
  husk init --hook pre-push --command "go test ./..."
  husk init --force                          # overwrite an existing file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveRoot(root)
			if err != nil {
				return err
			}

			evs, cmds := make([]config.Event, 0, len(events)), commands
			for _, name := range events {
				ev, err := config.ParseEvent(name)
				if err != nil {
					return err
				}
				evs = append(evs, ev)
			}

			interactive := len(evs) == 0 && len(cmds) == 0 &&
				isatty.IsTerminal(os.Stdin.Fd())
			if interactive {
				evs, cmds, err = initForm()
				if err != nil {
					return err
				}
				if evs == nil {
					return nil // user cancelled
				}
			}
			if len(evs) == 0 {
				evs = []config.Event{config.PrePush}
			}
			if len(cmds) == 0 {
				cmds = []string{config.TestCommand}
			}

			return runInit(cmd.Context(), projectRoot, evs, cmds, force)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: $HUSK_PROJECT_ROOT or working directory)")
	cmd.Flags().StringSliceVar(&events, "hook", nil, "Hook events to configure (pre-commit, pre-push, post-merge)")
	cmd.Flags().StringArrayVar(&commands, "command", nil, "Command each configured hook should run (repeatable)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing project file")

	return cmd
}

// initForm collects events and commands interactively. Returns nil
// events when the user cancels.
func initForm() ([]config.Event, []string, error) {
	var (
		selected      []string
		commandsInput string
		confirmed     bool
	)

	eventOptions := make([]huh.Option[string], 0, len(config.KnownEvents()))
	for _, ev := range config.KnownEvents() {
		opt := huh.NewOption(string(ev), string(ev))
		if ev == config.PrePush {
			opt = opt.Selected(true)
		}
		eventOptions = append(eventOptions, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Hook events").
				Description("Git events that should run project checks").
				Options(eventOptions...).
				Value(&selected).
				Validate(func(vals []string) error {
					if len(vals) == 0 {
						return fmt.Errorf("select at least one event")
					}
					return nil
				}),

			huh.NewInput().
				Title("Commands").
				Description("Comma-separated commands each hook runs").
				Placeholder(config.TestCommand).
				Value(&commandsInput),

			huh.NewConfirm().
				Title("Write " + config.ProjectFileName + "?").
				Affirmative("Write").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("form error: %w", err)
	}
	if !confirmed {
		return nil, nil, nil
	}

	events := make([]config.Event, 0, len(selected))
	for _, name := range selected {
		events = append(events, config.Event(name))
	}

	var commands []string
	for _, c := range strings.Split(commandsInput, ",") {
		if c = strings.TrimSpace(c); c != "" {
			commands = append(commands, c)
		}
	}
	return events, commands, nil
}
