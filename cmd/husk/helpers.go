package main

import (
	"os"
	"path/filepath"
)

// Environment variables set by build tooling that invokes husk once
// per build (e.g. a go:generate directive or Makefile target).
const (
	envProjectRoot = "HUSK_PROJECT_ROOT"
	envToolVersion = "HUSK_VERSION"
)

// resolveRoot picks the project root: flag > HUSK_PROJECT_ROOT > cwd.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}
	if env := os.Getenv(envProjectRoot); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}

// resolveToolVersion returns the version stamped into generated hooks.
// Build tooling overrides the compiled-in version with HUSK_VERSION so
// hooks track the version of the package being built, not of the husk
// binary on PATH.
func resolveToolVersion() string {
	if env := os.Getenv(envToolVersion); env != "" {
		return env
	}
	return version
}
