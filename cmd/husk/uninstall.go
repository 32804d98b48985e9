package main

import (
	"context"
	"errors"

	"github.com/jmeyers/husk/internal/git"
	"github.com/jmeyers/husk/internal/hooks"
	"github.com/jmeyers/husk/internal/log"
)

// runUninstall removes husk-owned hooks from the repository containing
// root. Foreign hooks are reported and left in place.
func runUninstall(ctx context.Context, root string) error {
	l := log.FromContext(ctx)

	hooksDir, err := git.HooksDir(root)
	if errors.Is(err, git.ErrNotRepository) || errors.Is(err, git.ErrMalformedGitFile) {
		l.Warnf("nothing to uninstall: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	results, err := hooks.Uninstall(hooksDir)
	for _, res := range results {
		switch res.Outcome {
		case hooks.OutcomeRemoved:
			l.Printf("removed %s hook\n", res.Event)
		case hooks.OutcomeSkippedForeign:
			l.Warnf("%s hook was not set by husk, left in place", res.Event)
		}
	}
	if err == nil && len(results) == 0 {
		l.Printf("no husk hooks installed\n")
	}
	return err
}
