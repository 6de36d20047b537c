package engine

import (
	"github.com/danieljhkim/repogen/internal/spec"
)

// Validate loads a specification file and checks its shape and required
// fields, returning the typed specification on success.
func (e *Engine) Validate(req *ValidateRequest) (*ValidateResult, error) {
	file, err := spec.Load(e.fs, req.SpecPath)
	if err != nil {
		return nil, err
	}

	if err := spec.Validate(file.Doc, req.Strict, spec.DefaultAllowlists()); err != nil {
		return nil, err
	}

	s, err := spec.Decode(file.Doc)
	if err != nil {
		return nil, err
	}

	return &ValidateResult{
		Spec:     s,
		SpecHash: e.hasher.HashBytes(file.Raw),
	}, nil
}
