// Package config resolves husk's feature flags into a hook configuration.
//
// A [Features] record says which hook events are enabled and which checks
// every enabled event should run. [Resolve] turns it into a [Config] keyed
// by event, with a deterministic command order per event. Events that end
// up with no commands are dropped entirely, so no empty hook file is ever
// installed.
//
// # Defaults
//
// The shipped default is deliberately safe: a project that adopts husk
// without any explicit configuration gets a pre-push hook running the test
// suite. The resolver itself is policy-free; callers can clear every flag
// and get a no-op configuration.
//
// # Project Configuration
//
// An optional .husk.toml at the project root supplements the feature flags:
//
//	[hooks.pre-commit]
//	commands = ["gofmt -l ."]
//
//	[hooks.pre-push]
//	disabled = true
//
// Project commands are appended after the feature-selected commands, and
// disabled = true removes an event regardless of the feature flags.
package config
