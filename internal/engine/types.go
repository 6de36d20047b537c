package engine

import (
	"github.com/danieljhkim/repogen/internal/manifest"
	"github.com/danieljhkim/repogen/internal/planner"
	"github.com/danieljhkim/repogen/internal/spec"
)

// ValidateRequest carries the inputs for Engine.Validate.
type ValidateRequest struct {
	// SpecPath is the specification file path
	SpecPath string

	// Strict enables unknown-key rejection
	Strict bool
}

// ValidateResult carries the outcome of Engine.Validate.
type ValidateResult struct {
	// Spec is the validated, typed specification
	Spec *spec.Specification

	// SpecHash is the content hash of the specification file
	SpecHash string
}

// PlanRequest carries the inputs for Engine.Plan.
type PlanRequest struct {
	// SpecPath is the specification file path
	SpecPath string

	// TemplatesRoot is the template library root
	TemplatesRoot string

	// OutputRoot is the directory generation targets
	OutputRoot string

	// AllowPaths is the optional allow-path glob list
	AllowPaths []string

	// Strict enables strict validation and plan-time placeholder resolution
	Strict bool
}

// PlanResult carries the outcome of Engine.Plan.
type PlanResult struct {
	// Spec is the validated, typed specification
	Spec *spec.Specification

	// SpecHash is the content hash of the specification file
	SpecHash string

	// Plan is the generation plan
	Plan *planner.Plan
}

// ApplyRequest carries the inputs for Engine.Apply.
type ApplyRequest struct {
	PlanRequest

	// Policy governs pre-existing destinations
	Policy Policy

	// Confirm must be set; apply refuses to run without it
	Confirm bool

	// Force must accompany the overwrite policy
	Force bool

	// AllowExistingRoot permits applying into an output root that already
	// exists as a directory
	AllowExistingRoot bool

	// Prompter handles the prompt policy; a nil Prompter is treated as
	// non-interactive
	Prompter Prompter
}

// ApplyResult carries the outcome of Engine.Apply.
type ApplyResult struct {
	// Plan is the plan that was applied
	Plan *planner.Plan

	// Written lists the files actually written, in write order
	Written []manifest.FileEntry

	// Skipped lists relative paths omitted under the skip or prompt policy
	Skipped []string

	// ManifestPath is where the manifest was written
	ManifestPath string
}
