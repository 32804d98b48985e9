package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmeyers/husk/internal/config"
)

func TestInspect(t *testing.T) {
	hooksDir := t.TempDir()

	// pre-commit: current version, pre-push: older stamp, post-merge:
	// foreign content.
	require.NoError(t, os.WriteFile(
		filepath.Join(hooksDir, "pre-commit"),
		[]byte(Script(config.PreCommit, []string{"go test ./..."}, "1.0.0")), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(hooksDir, "pre-push"),
		[]byte(Script(config.PrePush, []string{"go test ./..."}, "0.9.0")), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(hooksDir, "post-merge"),
		[]byte("#!/bin/sh\necho custom\n"), 0o755))

	statuses := Inspect(hooksDir, "1.0.0")
	require.Len(t, statuses, len(config.KnownEvents()))

	byEvent := make(map[config.Event]Status)
	for _, st := range statuses {
		byEvent[st.Event] = st
	}

	assert.Equal(t, StateCurrent, byEvent[config.PreCommit].State)
	assert.Equal(t, "1.0.0", byEvent[config.PreCommit].Version)

	assert.Equal(t, StateOutdated, byEvent[config.PrePush].State)
	assert.Equal(t, "0.9.0", byEvent[config.PrePush].Version)

	assert.Equal(t, StateForeign, byEvent[config.PostMerge].State)
	assert.Empty(t, byEvent[config.PostMerge].Version)
}

func TestInspect_EmptyDir(t *testing.T) {
	statuses := Inspect(t.TempDir(), "1.0.0")
	require.Len(t, statuses, len(config.KnownEvents()))
	for _, st := range statuses {
		assert.Equal(t, StateMissing, st.State, "event %s", st.Event)
	}
}
