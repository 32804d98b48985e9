package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmeyers/husk/internal/config"
	"github.com/jmeyers/husk/internal/log"
)

const projectHeader = `# husk project configuration.
# Commands listed here are appended to the hooks husk installs.
`

// renderProject produces the .husk.toml content for the chosen events.
func renderProject(events []config.Event, commands []string) string {
	var b strings.Builder
	b.WriteString(projectHeader)
	for _, ev := range events {
		fmt.Fprintf(&b, "\n[hooks.%s]\n", ev)
		b.WriteString("commands = [")
		for i, cmd := range commands {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", cmd)
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// runInit writes a project file at root. Refuses to overwrite an
// existing file unless force is set.
func runInit(ctx context.Context, root string, events []config.Event, commands []string, force bool) error {
	l := log.FromContext(ctx)

	path := filepath.Join(root, config.ProjectFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(renderProject(events, commands)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	l.Printf("wrote %s\n", path)
	return nil
}
