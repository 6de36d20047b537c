package engine

import (
	"os"
	"path/filepath"

	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/manifest"
	"github.com/danieljhkim/repogen/internal/planner"
	"github.com/danieljhkim/repogen/internal/render"
)

// Apply builds a fresh plan and executes it against the filesystem under the
// requested conflict policy, then writes the integrity manifest.
//
// Algorithm steps:
//  1. Preconditions: confirmation set, force present with overwrite policy,
//     existing output root allowed
//  2. Build the plan (no mutation yet)
//  3. Create the output root and every planned directory
//  4. For each write, in plan order: re-check destination existence (the
//     plan/apply race is accepted), apply the conflict policy, render the
//     template against a freshly built context, write atomically, hash
//  5. Write the manifest reflecting exactly the files written
//
// Apply is not transactional: a conflict under the fail policy leaves the
// files written before it on disk, and the manifest records only those.
func (e *Engine) Apply(req *ApplyRequest) (*ApplyResult, error) {
	if !req.Confirm {
		return nil, errors.New(errors.EUsage, "apply requires the confirmation flag")
	}
	if req.Policy == PolicyOverwrite && !req.Force {
		return nil, errors.New(errors.EUsage, "overwrite policy requires the force flag")
	}
	if req.OutputRoot == "" {
		return nil, errors.New(errors.EUsage, "output root is required")
	}

	if info, err := e.fs.Lstat(req.OutputRoot); err == nil {
		if !info.IsDir() {
			return nil, errors.Newf(errors.EUsage, "output root %q exists and is not a directory", req.OutputRoot)
		}
		if !req.AllowExistingRoot {
			return nil, errors.Newf(errors.EUsage, "output root %q already exists; pass the allow-existing-root flag to apply into it", req.OutputRoot)
		}
	}

	planned, err := e.Plan(&req.PlanRequest)
	if err != nil {
		return nil, err
	}
	plan := planned.Plan

	if err := e.fs.MkdirAll(req.OutputRoot, 0755); err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to create output root", err)
	}
	for _, dir := range plan.Mkdir {
		abs := filepath.Join(req.OutputRoot, filepath.FromSlash(dir))
		if err := e.fs.MkdirAll(abs, 0755); err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to create directory "+dir, err)
		}
	}

	result := &ApplyResult{
		Plan:         plan,
		Written:      []manifest.FileEntry{},
		Skipped:      []string{},
		ManifestPath: manifest.Path(req.OutputRoot),
	}

	ctx := render.BuildContext(planned.Spec)

	// Destinations this apply has already written, so that duplicate
	// component declarations resolve last-wins instead of conflicting with
	// the apply's own output.
	written := map[string]int{}

	var conflictErr error
	for _, target := range plan.Targets() {
		proceed, err := e.resolveConflict(req, target, written)
		if err != nil {
			// A conflict stops the apply but still gets a manifest
			// reflecting what succeeded before it.
			conflictErr = err
			break
		}
		if !proceed {
			result.Skipped = append(result.Skipped, target.RelPath)
			continue
		}

		text, err := e.fs.ReadFile(target.Entry.Source)
		if err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to read template "+target.Entry.ID(), err)
		}
		rendered, err := render.Render(string(text), ctx)
		if err != nil {
			return nil, err
		}
		data := []byte(rendered)
		if err := e.fs.AtomicWrite(target.AbsPath, data, 0644); err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to write "+target.RelPath, err)
		}
		entry := manifest.FileEntry{
			Path:        target.RelPath,
			ContentHash: e.hasher.HashBytes(data),
		}
		if i, ok := written[target.AbsPath]; ok {
			result.Written[i] = entry
		} else {
			written[target.AbsPath] = len(result.Written)
			result.Written = append(result.Written, entry)
		}
	}

	m := &manifest.Manifest{
		SpecHash:    planned.SpecHash,
		ToolVersion: e.version,
		AppliedAt:   e.clock.Now().UTC(),
		Archetype: manifest.Archetype{
			Type:    planned.Spec.Archetype.Type,
			Variant: planned.Spec.Archetype.Variant,
		},
		Components: planned.Spec.Archetype.Components,
		Files:      result.Written,
	}
	if err := manifest.Write(e.fs, req.OutputRoot, m); err != nil {
		return nil, err
	}

	if conflictErr != nil {
		return result, conflictErr
	}
	return result, nil
}

// resolveConflict decides what to do with a single write target whose
// destination may already exist. It returns whether to proceed with the
// write; a conflict under the fail policy (or an unanswerable prompt) is
// returned as an error. A destination this apply already wrote is not a
// conflict: a later duplicate write proceeds and wins.
func (e *Engine) resolveConflict(req *ApplyRequest, target planner.WriteTarget, written map[string]int) (bool, error) {
	if _, ok := written[target.AbsPath]; ok {
		return true, nil
	}

	info, err := e.fs.Lstat(target.AbsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, errors.Wrap(errors.EInternal, "failed to check destination "+target.RelPath, err)
	}
	// Only a pre-existing file is a policy question; a directory can never
	// be overwritten by a file write.
	if info.IsDir() {
		return false, errors.Newf(errors.EConflict, "destination %q already exists as a directory", target.RelPath)
	}

	switch req.Policy {
	case PolicySkip:
		return false, nil
	case PolicyOverwrite:
		return true, nil
	case PolicyPrompt:
		// Never prompt into a void: a non-interactive input stream is an
		// automatic conflict failure, not an automatic skip.
		if req.Prompter == nil || !req.Prompter.Interactive() {
			return false, errors.Newf(errors.EConflict, "destination %q already exists and input is not interactive", target.RelPath)
		}
		ok, err := req.Prompter.Confirm("overwrite " + target.RelPath + "?")
		if err != nil {
			return false, errors.Wrap(errors.EInternal, "prompt failed", err)
		}
		return ok, nil
	default: // PolicyFail
		return false, errors.Newf(errors.EConflict, "destination %q already exists", target.RelPath)
	}
}
