package engine

import (
	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/library"
	"github.com/danieljhkim/repogen/internal/planner"
	"github.com/danieljhkim/repogen/internal/render"
	"github.com/danieljhkim/repogen/internal/sandbox"
)

// Plan validates the specification, selects templates, and builds the
// generation plan. It never mutates the filesystem: a fresh output root is
// left uncreated and untouched.
func (e *Engine) Plan(req *PlanRequest) (*PlanResult, error) {
	if req.OutputRoot == "" {
		return nil, errors.New(errors.EUsage, "output root is required")
	}

	validated, err := e.Validate(&ValidateRequest{SpecPath: req.SpecPath, Strict: req.Strict})
	if err != nil {
		return nil, err
	}

	entries, err := library.Select(e.fs, req.TemplatesRoot, validated.Spec.Archetype)
	if err != nil {
		return nil, err
	}

	ctx := render.BuildContext(validated.Spec)

	box, err := sandbox.New(req.OutputRoot)
	if err != nil {
		return nil, err
	}

	allow, err := sandbox.NewAllowList(req.AllowPaths)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Build(planner.BuildInput{
		Entries: entries,
		Context: ctx,
		Sandbox: box,
		Allow:   allow,
		Strict:  req.Strict,
		Params:  validated.Spec.Params,
		FS:      e.fs,
	})
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		Spec:     validated.Spec,
		SpecHash: validated.SpecHash,
		Plan:     plan,
	}, nil
}
