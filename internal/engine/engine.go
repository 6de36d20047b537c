// Package engine provides the core business logic for repogen operations.
//
// The engine is the orchestration layer between the CLI and the lower-level
// packages. Validate checks a specification, Plan builds the side-effect-free
// generation plan, and Apply executes an approved plan against the filesystem
// under a conflict policy and writes the integrity manifest.
//
// Everything is synchronous and single-threaded: operations run strictly in
// plan order, then strictly in write order, and any fatal error aborts the
// run with no cleanup of already-written files. Plan-time conflict detection
// and apply-time conflict handling are separate passes over the filesystem;
// the resulting race with concurrent mutations of the output root is an
// accepted property of a single-operator tool.
package engine

import (
	"github.com/danieljhkim/repogen/internal/clock"
	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/hash"
)

// Engine orchestrates all repogen operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	hasher  hash.Hasher
	clock   clock.Clock
	version string
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, version string) *Engine {
	return &Engine{
		fs:      fs,
		hasher:  hasher,
		clock:   clk,
		version: version,
	}
}

// Policy governs behavior when a planned destination already exists.
type Policy string

// Conflict policies.
const (
	PolicyFail      Policy = "fail"
	PolicySkip      Policy = "skip"
	PolicyOverwrite Policy = "overwrite"
	PolicyPrompt    Policy = "prompt"
)

// ParsePolicy validates a conflict policy value.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyFail, PolicySkip, PolicyOverwrite, PolicyPrompt:
		return Policy(s), nil
	default:
		return "", errors.Newf(errors.EUsage, "invalid conflict policy %q (want fail|skip|overwrite|prompt)", s)
	}
}

// Prompter asks the operator to confirm an overwrite under the "prompt"
// conflict policy.
type Prompter interface {
	// Interactive reports whether the process has an interactive input stream.
	Interactive() bool

	// Confirm asks for confirmation and returns true on an affirmative answer.
	Confirm(prompt string) (bool, error)
}
