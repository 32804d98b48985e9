package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmeyers/husk/internal/git"
	"github.com/jmeyers/husk/internal/hooks"
	"github.com/jmeyers/husk/internal/output"
	"github.com/jmeyers/husk/internal/ui/styles"
)

// runStatus prints the state of every known hook event.
func runStatus(ctx context.Context, root string, styled bool) error {
	p := output.FromContext(ctx)

	hooksDir, err := git.HooksDir(root)
	if errors.Is(err, git.ErrNotRepository) || errors.Is(err, git.ErrMalformedGitFile) {
		p.Println("not a git repository")
		return nil
	}
	if err != nil {
		return err
	}

	for _, st := range hooks.Inspect(hooksDir, resolveToolVersion()) {
		p.Println(formatStatus(st, styled))
	}
	return nil
}

func formatStatus(st hooks.Status, styled bool) string {
	switch st.State {
	case hooks.StateCurrent:
		return fmt.Sprintf("%s %s: installed (v%s)",
			styles.Mark(styles.Success, "✓", styled), st.Event, st.Version)
	case hooks.StateOutdated:
		return fmt.Sprintf("%s %s: installed (v%s) - outdated",
			styles.Mark(styles.Warning, "⚠", styled), st.Event, st.Version)
	case hooks.StateForeign:
		return fmt.Sprintf("%s %s: exists but not set by husk",
			styles.Mark(styles.Error, "●", styled), st.Event)
	default:
		return fmt.Sprintf("%s %s: not installed",
			styles.Mark(styles.Muted, "✗", styled), st.Event)
	}
}
