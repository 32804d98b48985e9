package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotRepository indicates that no .git entry was found between the
// start directory and the filesystem root.
var ErrNotRepository = errors.New("not inside a git repository")

// ErrMalformedGitFile indicates a .git file whose content does not
// parse as "gitdir: <path>". Callers treat it like [ErrNotRepository].
var ErrMalformedGitFile = errors.New("malformed .git file")

const gitDirPrefix = "gitdir:"

// HooksDir resolves the hooks directory for the repository containing
// start, walking upward until a .git entry is found. For worktrees and
// submodules the gitdir indirection is followed to the directory Git
// actually reads hooks from.
func HooksDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		entry := filepath.Join(dir, ".git")
		info, err := os.Stat(entry)
		switch {
		case err == nil && info.IsDir():
			return filepath.Join(entry, "hooks"), nil
		case err == nil && info.Mode().IsRegular():
			admin, err := resolveGitFile(entry)
			if err != nil {
				return "", err
			}
			return filepath.Join(admin, "hooks"), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepository
		}
		dir = parent
	}
}

// resolveGitFile follows the gitdir pointer in a .git file and returns
// the final repository admin directory.
func resolveGitFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, gitDirPrefix) {
		return "", fmt.Errorf("%w: %s", ErrMalformedGitFile, path)
	}

	target := normalizeSeparators(strings.TrimSpace(strings.TrimPrefix(line, gitDirPrefix)))
	if target == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedGitFile, path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	// A linked worktree's gitdir points at a per-worktree admin
	// directory whose commondir file leads back to the shared
	// repository. Follow exactly one level; a submodule's gitdir has
	// no commondir and is already final.
	if data, err := os.ReadFile(filepath.Join(target, "commondir")); err == nil {
		common := normalizeSeparators(strings.TrimSpace(string(data)))
		if !filepath.IsAbs(common) {
			common = filepath.Join(target, common)
		}
		target = common
	}

	return filepath.Clean(target), nil
}

// normalizeSeparators accepts both forward- and back-slash forms, as
// written by git on Windows.
func normalizeSeparators(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}
