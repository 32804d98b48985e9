package hooks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmeyers/husk/internal/config"
)

// Outcome classifies what happened to one hook during install or
// uninstall.
type Outcome int

const (
	// OutcomeInstalled means no hook existed and a fresh one was written.
	OutcomeInstalled Outcome = iota
	// OutcomeUpdated means a hook stamped with a different husk version
	// was rewritten.
	OutcomeUpdated
	// OutcomeUpToDate means the existing hook already carries the
	// current version; nothing was written.
	OutcomeUpToDate
	// OutcomeSkippedForeign means a hook without husk's marker exists
	// at the target path and was left untouched.
	OutcomeSkippedForeign
	// OutcomeRemoved means a husk-owned hook was deleted (uninstall).
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeUpdated:
		return "updated"
	case OutcomeUpToDate:
		return "up to date"
	case OutcomeSkippedForeign:
		return "skipped (foreign hook)"
	case OutcomeRemoved:
		return "removed"
	}
	return "unknown"
}

// Result describes what happened to one hook event.
type Result struct {
	Event   config.Event
	Path    string
	Outcome Outcome
	// PreviousVersion is the stamp that was replaced, set only for
	// OutcomeUpdated.
	PreviousVersion string
}

// InstallError is a fatal filesystem failure while reading or writing
// a hook. Unlike a missing repository it aborts the whole install:
// a tool whose purpose is guaranteeing hooks exist must fail loudly
// when the filesystem refuses writes.
type InstallError struct {
	Path string
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install hook %s: %v", e.Path, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Install writes a script for every non-empty event of cfg into
// hooksDir, creating the directory if needed. It returns a Result per
// event, including the partial results accumulated before a failure.
func Install(hooksDir string, cfg config.Config, version string) ([]Result, error) {
	events := cfg.Events()
	if len(events) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, &InstallError{Path: hooksDir, Err: err}
	}

	var results []Result
	for _, ev := range events {
		res, err := installOne(hooksDir, ev, cfg.Commands(ev), version)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func installOne(hooksDir string, ev config.Event, commands []string, version string) (Result, error) {
	path := filepath.Join(hooksDir, string(ev))
	res := Result{Event: ev, Path: path}

	var err error
	res.Outcome, res.PreviousVersion, err = installContent(path, Script(ev, commands, version), version)
	return res, err
}

// installContent applies the ownership decision for one hook file and
// writes content when the decision calls for it.
func installContent(path, content, version string) (Outcome, string, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fresh install
	case err != nil:
		return 0, "", &InstallError{Path: path, Err: err}
	case !Owned(string(existing)):
		return OutcomeSkippedForeign, "", nil
	case Version(string(existing)) == version:
		return OutcomeUpToDate, "", nil
	}

	outcome, prev := OutcomeInstalled, ""
	if err == nil {
		outcome, prev = OutcomeUpdated, Version(string(existing))
	}
	if werr := writeScript(path, content); werr != nil {
		return outcome, prev, &InstallError{Path: path, Err: werr}
	}
	return outcome, prev, nil
}

// writeScript persists content atomically: the fully-formed temp file
// is renamed onto the target, so two racing installers each publish a
// complete script and the last rename wins.
func writeScript(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	// Git only runs hooks with the executable bit set.
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
