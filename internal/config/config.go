package config

import (
	"fmt"
	"slices"
	"strings"
)

// Event names a point in Git's workflow at which Git executes a hook script.
type Event string

const (
	PreCommit Event = "pre-commit"
	PrePush   Event = "pre-push"
	PostMerge Event = "post-merge"
)

// KnownEvents returns every recognized hook event in canonical order.
// The order is stable so resolved configurations and rendered output
// are deterministic.
func KnownEvents() []Event {
	return []Event{PreCommit, PrePush, PostMerge}
}

// ParseEvent validates a user-supplied event name.
func ParseEvent(name string) (Event, error) {
	ev := Event(strings.TrimSpace(name))
	if slices.Contains(KnownEvents(), ev) {
		return ev, nil
	}
	known := make([]string, 0, len(KnownEvents()))
	for _, e := range KnownEvents() {
		known = append(known, string(e))
	}
	return "", fmt.Errorf("unknown hook event %q (known: %s)", name, strings.Join(known, ", "))
}

// Commands run by the command selector flags.
const (
	TestCommand = "go test ./..."
	LintCommand = "go vet ./..."
)

// Features is the fully-resolved feature flag set for one install run.
// All flags are known before resolution starts; nothing here is read
// from the environment.
type Features struct {
	// Event selectors
	PreCommit bool
	PrePush   bool
	PostMerge bool

	// Command selectors
	RunTests bool
	RunLint  bool

	// Extra commands appended to every enabled event, in order.
	Extra []string
}

// Default returns the shipped default feature set: a pre-push hook
// running the test suite. This is default input, not resolver policy;
// pass a zero Features for a no-op configuration.
func Default() Features {
	return Features{PrePush: true, RunTests: true}
}

// Config maps hook events to the ordered commands each installed
// script runs. One configuration yields at most one script per event.
type Config struct {
	commands map[Event][]string
}

// Resolve turns a feature set into a hook configuration. Resolution is
// pure data transformation: no IO, no failure modes. Command order per
// event is tests, then lint, then extras.
func Resolve(f Features) Config {
	var cmds []string
	if f.RunTests {
		cmds = append(cmds, TestCommand)
	}
	if f.RunLint {
		cmds = append(cmds, LintCommand)
	}
	cmds = append(cmds, f.Extra...)

	cfg := Config{commands: make(map[Event][]string)}
	for _, ev := range f.events() {
		cfg.commands[ev] = slices.Clone(cmds)
	}
	return cfg
}

func (f Features) events() []Event {
	var evs []Event
	if f.PreCommit {
		evs = append(evs, PreCommit)
	}
	if f.PrePush {
		evs = append(evs, PrePush)
	}
	if f.PostMerge {
		evs = append(evs, PostMerge)
	}
	return evs
}

// Events returns the events that have at least one command, in
// canonical order. Events with empty command lists are omitted so no
// empty hook file is installed for them.
func (c Config) Events() []Event {
	var evs []Event
	for _, ev := range KnownEvents() {
		if len(c.commands[ev]) > 0 {
			evs = append(evs, ev)
		}
	}
	return evs
}

// Commands returns the ordered command list for an event.
func (c Config) Commands(ev Event) []string {
	return slices.Clone(c.commands[ev])
}

// Append adds a command to an event, enabling the event if it had none.
func (c *Config) Append(ev Event, command string) {
	if c.commands == nil {
		c.commands = make(map[Event][]string)
	}
	c.commands[ev] = append(c.commands[ev], command)
}

// Drop removes an event from the configuration entirely.
func (c *Config) Drop(ev Event) {
	delete(c.commands, ev)
}

// ApplyProject merges a project file into the configuration: per-event
// commands are appended after the feature-selected ones, and disabled
// events are dropped. Sections are applied in canonical event order.
func (c *Config) ApplyProject(p Project) {
	for _, ev := range KnownEvents() {
		hook, ok := p.Hooks[string(ev)]
		if !ok {
			continue
		}
		if hook.Disabled {
			c.Drop(ev)
			continue
		}
		for _, cmd := range hook.Commands {
			c.Append(ev, cmd)
		}
	}
}
