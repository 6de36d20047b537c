package planner

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/library"
	"github.com/danieljhkim/repogen/internal/render"
	"github.com/danieljhkim/repogen/internal/sandbox"
)

// BuildInput carries everything the plan is a function of.
type BuildInput struct {
	// Entries is the ordered template selection
	Entries []library.Entry

	// Context is the placeholder-resolution environment
	Context *render.Context

	// Sandbox resolves destinations under the output root
	Sandbox *sandbox.Sandbox

	// Allow is the optional allow-path list (nil or empty permits everything)
	Allow *sandbox.AllowList

	// Strict enables placeholder resolution and unused-parameter detection
	// at plan time
	Strict bool

	// Params is the specification's parameter mapping, used for strict-mode
	// unused-parameter detection
	Params map[string]any

	// FS is used for template reads and destination existence checks
	FS fsops.FS
}

// Build produces the generation plan. It performs no filesystem mutation.
//
// For each selected entry, in selection order: derive the destination path by
// suffix removal, resolve it through the sandbox (escape is fatal), check it
// against the allow-path list (no match is fatal), record its parent
// directory, scan the template for placeholders (resolving them in strict
// mode), record a conflict if the destination already exists, and append the
// write. Strict mode finally rejects parameters no template referenced.
func Build(in BuildInput) (*Plan, error) {
	plan := &Plan{
		Mkdir:     []string{},
		Writes:    []WriteOp{},
		Conflicts: []string{},
	}

	mkdirSet := map[string]bool{}
	referenced := map[string]bool{}

	for _, entry := range in.Entries {
		relPath := entry.DestRelPath()

		absPath, err := in.Sandbox.Resolve(relPath)
		if err != nil {
			return nil, err
		}

		if err := in.Allow.Check(relPath); err != nil {
			return nil, err
		}

		if parent := path.Dir(relPath); parent != "." {
			mkdirSet[parent] = true
		}

		text, err := in.FS.ReadFile(entry.Source)
		if err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to read template "+entry.ID(), err)
		}
		for _, placeholder := range render.Placeholders(string(text)) {
			referenced[placeholder] = true
			if in.Strict {
				if _, ok := in.Context.Resolve(placeholder); !ok {
					return nil, errors.Newf(errors.EValidation,
						"unresolved placeholder ${%s} in template %s", placeholder, entry.ID())
				}
			}
		}

		info, err := in.FS.Lstat(absPath)
		if err == nil {
			// Only a pre-existing file is a conflict; a directory at a file
			// destination can never be resolved by any policy.
			if info.IsDir() {
				return nil, errors.Newf(errors.EConflict, "destination %q already exists as a directory", relPath)
			}
			plan.Conflicts = append(plan.Conflicts, relPath)
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.EInternal, "failed to check destination "+relPath, err)
		}

		plan.Writes = append(plan.Writes, WriteOp{Path: relPath, Template: entry.ID()})
		plan.targets = append(plan.targets, WriteTarget{
			RelPath: relPath,
			AbsPath: absPath,
			Entry:   entry,
		})
	}

	if in.Strict && len(in.Params) > 0 {
		if err := checkUnusedParams(in.Params, referenced); err != nil {
			return nil, err
		}
	}

	for dir := range mkdirSet {
		plan.Mkdir = append(plan.Mkdir, dir)
	}
	sort.Strings(plan.Mkdir)

	plan.Summary = Summary{
		Mkdir:     len(plan.Mkdir),
		WriteFile: len(plan.Writes),
		Conflicts: len(plan.Conflicts),
	}

	return plan, nil
}

// checkUnusedParams rejects parameter keys never referenced by any processed
// template's placeholders. This catches specification drift where a parameter
// is set but has no effect.
func checkUnusedParams(params map[string]any, referenced map[string]bool) error {
	var unused []string
	for key := range params {
		prefix := "params." + key
		used := false
		for placeholder := range referenced {
			if placeholder == prefix || strings.HasPrefix(placeholder, prefix+".") {
				used = true
				break
			}
		}
		if !used {
			unused = append(unused, key)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		return errors.Newf(errors.EValidation,
			"unused parameter %s: set in the specification but referenced by no template", fmt.Sprintf("%q", unused[0]))
	}
	return nil
}
