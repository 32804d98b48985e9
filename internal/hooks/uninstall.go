package hooks

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmeyers/husk/internal/config"
)

// Uninstall removes husk-owned hooks from hooksDir. Files without the
// marker are reported as foreign and left in place; missing files
// produce no result.
func Uninstall(hooksDir string) ([]Result, error) {
	var results []Result
	for _, ev := range config.KnownEvents() {
		path := filepath.Join(hooksDir, string(ev))

		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return results, &InstallError{Path: path, Err: err}
		}

		if !Owned(string(content)) {
			results = append(results, Result{Event: ev, Path: path, Outcome: OutcomeSkippedForeign})
			continue
		}

		if err := os.Remove(path); err != nil {
			return results, &InstallError{Path: path, Err: err}
		}
		results = append(results, Result{Event: ev, Path: path, Outcome: OutcomeRemoved})
	}
	return results, nil
}
