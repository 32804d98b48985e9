package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmeyers/husk/internal/config"
)

func TestInstall_Fresh(t *testing.T) {
	hooksDir := t.TempDir()

	results, err := Install(hooksDir, config.Resolve(config.Default()), "1.0.0")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, config.PrePush, results[0].Event)
	assert.Equal(t, OutcomeInstalled, results[0].Outcome)

	path := filepath.Join(hooksDir, "pre-push")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "hook must be executable for Git to run it")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), config.TestCommand)

	// The default installs pre-push only.
	_, err = os.Stat(filepath.Join(hooksDir, "pre-commit"))
	assert.True(t, os.IsNotExist(err))
}

func TestInstall_Idempotent(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := config.Resolve(config.Default())

	_, err := Install(hooksDir, cfg, "1.0.0")
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(hooksDir, "pre-push"))
	require.NoError(t, err)

	results, err := Install(hooksDir, cfg, "1.0.0")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeUpToDate, results[0].Outcome)

	second, err := os.ReadFile(filepath.Join(hooksDir, "pre-push"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "second install must leave content byte-identical")
}

func TestInstall_ForeignPreserved(t *testing.T) {
	hooksDir := t.TempDir()
	path := filepath.Join(hooksDir, "pre-push")
	foreign := "#!/bin/sh\necho 'hook put by someone else'\n"
	require.NoError(t, os.WriteFile(path, []byte(foreign), 0o755))

	results, err := Install(hooksDir, config.Resolve(config.Default()), "1.0.0")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeSkippedForeign, results[0].Outcome)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(content))
}

func TestInstall_VersionRefresh(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := config.Resolve(config.Default())

	_, err := Install(hooksDir, cfg, "0.1.0")
	require.NoError(t, err)

	results, err := Install(hooksDir, cfg, "0.2.0")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeUpdated, results[0].Outcome)
	assert.Equal(t, "0.1.0", results[0].PreviousVersion)

	content, err := os.ReadFile(filepath.Join(hooksDir, "pre-push"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "set by husk v0.2.0")
	assert.NotContains(t, string(content), "v0.1.0")
}

func TestInstall_EmptyConfigWritesNothing(t *testing.T) {
	hooksDir := filepath.Join(t.TempDir(), ".git", "hooks")

	results, err := Install(hooksDir, config.Resolve(config.Features{RunTests: true}), "1.0.0")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Not even the hooks directory is created for a no-op config.
	_, err = os.Stat(hooksDir)
	assert.True(t, os.IsNotExist(err))
}

func TestInstall_CreatesHooksDir(t *testing.T) {
	hooksDir := filepath.Join(t.TempDir(), ".git", "hooks")

	_, err := Install(hooksDir, config.Resolve(config.Default()), "1.0.0")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(hooksDir, "pre-push"))
	assert.NoError(t, err)
}

func TestInstall_CommandOrder(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := config.Resolve(config.Features{
		PreCommit: true,
		RunTests:  true,
		RunLint:   true,
		Extra:     []string{"make generate-check"},
	})

	_, err := Install(hooksDir, cfg, "1.0.0")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(hooksDir, "pre-commit"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(content),
		config.TestCommand+"\n"+config.LintCommand+"\nmake generate-check\n"))
}

func TestInstall_NoStrayTempFiles(t *testing.T) {
	hooksDir := t.TempDir()

	_, err := Install(hooksDir, config.Resolve(config.Default()), "1.0.0")
	require.NoError(t, err)

	entries, err := os.ReadDir(hooksDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pre-push", entries[0].Name())
}

func TestInstall_MultipleEvents(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := config.Resolve(config.Features{
		PreCommit: true,
		PrePush:   true,
		PostMerge: true,
		RunTests:  true,
	})

	results, err := Install(hooksDir, cfg, "1.0.0")
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, ev := range config.KnownEvents() {
		_, err := os.Stat(filepath.Join(hooksDir, string(ev)))
		assert.NoError(t, err, "expected %s hook", ev)
	}
}

func TestInstall_ReadOnlyHooksDirFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	hooksDir := filepath.Join(t.TempDir(), "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	require.NoError(t, os.Chmod(hooksDir, 0o555))
	t.Cleanup(func() { os.Chmod(hooksDir, 0o755) })

	results, err := Install(hooksDir, config.Resolve(config.Default()), "1.0.0")
	require.Error(t, err)
	assert.Empty(t, results)

	var ierr *InstallError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Path, "pre-push")
}
