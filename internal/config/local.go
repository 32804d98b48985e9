package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFileName is the optional per-repository configuration file,
// looked up at the project root.
const ProjectFileName = ".husk.toml"

// ProjectHook is one [hooks.NAME] section of a project file.
type ProjectHook struct {
	Commands []string `toml:"commands"`
	Disabled bool     `toml:"disabled"`
}

// Project holds per-repository configuration loaded from .husk.toml.
type Project struct {
	Hooks map[string]ProjectHook `toml:"hooks"`
}

// LoadProject reads the project file from root. A missing file is not
// an error and yields the zero value; a file that names an unknown
// hook event or does not parse is.
func LoadProject(root string) (Project, error) {
	path := filepath.Join(root, ProjectFileName)

	var p Project
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}

	for name := range p.Hooks {
		if _, err := ParseEvent(name); err != nil {
			return Project{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return p, nil
}
