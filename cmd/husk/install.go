package main

import (
	"context"
	"errors"

	"github.com/jmeyers/husk/internal/config"
	"github.com/jmeyers/husk/internal/git"
	"github.com/jmeyers/husk/internal/hooks"
	"github.com/jmeyers/husk/internal/log"
)

// installOptions collects the resolved inputs of one install run.
type installOptions struct {
	root      string
	features  config.Features
	version   string
	userHooks bool
}

// runInstall performs one install pass. A missing or malformed
// repository is a warning, not an error: installing a hook is a build
// convenience and must not fail the surrounding build. Filesystem
// failures and a broken user-hooks setup are returned and do fail it.
func runInstall(ctx context.Context, opts installOptions) error {
	l := log.FromContext(ctx)

	// User hooks replace the feature-resolved configuration entirely;
	// their misconfiguration is surfaced even outside a repository.
	var install func(hooksDir string) ([]hooks.Result, error)
	if opts.userHooks {
		scripts, err := hooks.LoadUserScripts(hooks.UserScriptsDir(opts.root))
		if err != nil {
			return err
		}
		install = func(hooksDir string) ([]hooks.Result, error) {
			return hooks.InstallUser(hooksDir, scripts, opts.version)
		}
	} else {
		cfg := config.Resolve(opts.features)

		project, err := config.LoadProject(opts.root)
		if err != nil {
			return err
		}
		cfg.ApplyProject(project)

		if len(cfg.Events()) == 0 {
			l.Debugf("no hook events enabled, nothing to install")
			return nil
		}
		install = func(hooksDir string) ([]hooks.Result, error) {
			return hooks.Install(hooksDir, cfg, opts.version)
		}
	}

	hooksDir, err := git.HooksDir(opts.root)
	if errors.Is(err, git.ErrNotRepository) || errors.Is(err, git.ErrMalformedGitFile) {
		l.Warnf("skipping hook install: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	results, err := install(hooksDir)
	for _, res := range results {
		switch res.Outcome {
		case hooks.OutcomeInstalled:
			l.Printf("installed %s hook\n", res.Event)
		case hooks.OutcomeUpdated:
			l.Printf("updated %s hook (v%s -> v%s)\n", res.Event, res.PreviousVersion, opts.version)
		case hooks.OutcomeUpToDate:
			l.Debugf("%s hook already up to date", res.Event)
		case hooks.OutcomeSkippedForeign:
			l.Warnf("%s hook already exists and was not set by husk, skipped", res.Event)
		}
	}
	return err
}
