package hooks

import (
	"os"
	"path/filepath"

	"github.com/jmeyers/husk/internal/config"
)

// State classifies one hook file relative to the running husk version.
type State int

const (
	// StateMissing means no file exists for the event.
	StateMissing State = iota
	// StateCurrent means the hook is stamped with the running version.
	StateCurrent
	// StateOutdated means the hook is stamped with a different version
	// and will be rewritten on the next install.
	StateOutdated
	// StateForeign means a file exists but carries no husk marker.
	StateForeign
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateCurrent:
		return "current"
	case StateOutdated:
		return "outdated"
	case StateForeign:
		return "foreign"
	}
	return "unknown"
}

// Status is the inspection result for one hook event.
type Status struct {
	Event config.Event
	Path  string
	State State
	// Version is the stamped version for owned hooks, "" otherwise.
	Version string
}

// Inspect reports the status of every known hook event in hooksDir.
// Read errors are folded into StateMissing; inspection never fails.
func Inspect(hooksDir, version string) []Status {
	events := config.KnownEvents()
	statuses := make([]Status, 0, len(events))

	for _, ev := range events {
		path := filepath.Join(hooksDir, string(ev))
		st := Status{Event: ev, Path: path}

		content, err := os.ReadFile(path)
		switch {
		case err != nil:
			st.State = StateMissing
		case !Owned(string(content)):
			st.State = StateForeign
		default:
			st.Version = Version(string(content))
			if st.Version == version {
				st.State = StateCurrent
			} else {
				st.State = StateOutdated
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}
