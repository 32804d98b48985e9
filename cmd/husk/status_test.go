package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmeyers/husk/internal/config"
	"github.com/jmeyers/husk/internal/hooks"
	"github.com/jmeyers/husk/internal/output"
)

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name   string
		status hooks.Status
		want   string
	}{
		{
			name:   "current",
			status: hooks.Status{Event: config.PrePush, State: hooks.StateCurrent, Version: "1.0.0"},
			want:   "✓ pre-push: installed (v1.0.0)",
		},
		{
			name:   "outdated",
			status: hooks.Status{Event: config.PrePush, State: hooks.StateOutdated, Version: "0.9.0"},
			want:   "⚠ pre-push: installed (v0.9.0) - outdated",
		},
		{
			name:   "foreign",
			status: hooks.Status{Event: config.PreCommit, State: hooks.StateForeign},
			want:   "● pre-commit: exists but not set by husk",
		},
		{
			name:   "missing",
			status: hooks.Status{Event: config.PostMerge, State: hooks.StateMissing},
			want:   "✗ post-merge: not installed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStatus(tt.status, false); got != tt.want {
				t.Errorf("formatStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx, _ := testContext(t)

	if err := runInstall(ctx, installOptions{root: repo, features: config.Default(), version: version}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ctx = output.WithPrinter(ctx, &out)

	if err := runStatus(ctx, repo, false); err != nil {
		t.Fatalf("runStatus() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "pre-push: installed") {
		t.Errorf("expected pre-push installed line, got:\n%s", got)
	}
	if !strings.Contains(got, "pre-commit: not installed") {
		t.Errorf("expected pre-commit missing line, got:\n%s", got)
	}
}

func TestRunStatus_NotARepository(t *testing.T) {
	var out bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &out)

	if err := runStatus(ctx, t.TempDir(), false); err != nil {
		t.Fatalf("runStatus() error = %v", err)
	}
	if !strings.Contains(out.String(), "not a git repository") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunStatus_DetectsForeignHook(t *testing.T) {
	repo := newTestRepo(t)
	path := filepath.Join(repo, ".git", "hooks", "pre-push")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &out)

	if err := runStatus(ctx, repo, false); err != nil {
		t.Fatalf("runStatus() error = %v", err)
	}
	if !strings.Contains(out.String(), "pre-push: exists but not set by husk") {
		t.Errorf("expected foreign line, got:\n%s", out.String())
	}
}
