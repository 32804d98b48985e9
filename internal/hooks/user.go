package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmeyers/husk/internal/config"
)

// ErrNoUserHooks indicates a user-hooks install with nothing to
// install. Unlike a missing repository this is a misconfiguration and
// callers treat it as fatal.
var ErrNoUserHooks = errors.New("user hooks directory not found or contains no executable scripts")

// UserScriptsDir returns the directory user-authored hook scripts are
// read from.
func UserScriptsDir(root string) string {
	return filepath.Join(root, ".husk", "hooks")
}

// UserScript is one user-authored hook script, named after the Git
// event it handles.
type UserScript struct {
	Name    string
	Content string
}

// LoadUserScripts reads the executable scripts from dir, in name
// order. Files without the executable bit are ignored; an empty script
// is an error since it would silently pass every Git operation. A
// missing directory or one with no executable script at all yields
// ErrNoUserHooks.
func LoadUserScripts(dir string) ([]UserScript, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoUserHooks
	}
	if err != nil {
		return nil, err
	}

	var scripts []UserScript
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		if info.Mode()&0o111 == 0 {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("user hook script %s is empty", path)
		}
		scripts = append(scripts, UserScript{Name: entry.Name(), Content: string(data)})
	}

	if len(scripts) == 0 {
		return nil, ErrNoUserHooks
	}
	return scripts, nil
}

// InstallUser writes user-authored scripts into hooksDir under the
// same ownership rules as generated hooks: foreign files are skipped,
// a matching version stamp is a no-op, any other stamp is rewritten.
func InstallUser(hooksDir string, scripts []UserScript, version string) ([]Result, error) {
	if len(scripts) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, &InstallError{Path: hooksDir, Err: err}
	}

	var results []Result
	for _, s := range scripts {
		path := filepath.Join(hooksDir, s.Name)
		outcome, prev, err := installContent(path, RenderUser(s.Content, version), version)
		if err != nil {
			return results, err
		}
		results = append(results, Result{
			Event:           config.Event(s.Name),
			Path:            path,
			Outcome:         outcome,
			PreviousVersion: prev,
		})
	}
	return results, nil
}
