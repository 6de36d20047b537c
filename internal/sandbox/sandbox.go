// Package sandbox enforces the output-root containment invariant and the
// optional allow-path restriction.
//
// Every destination path computed by the planner must resolve strictly inside
// the output root. Containment is checked on the canonicalized string form of
// the resolved path, so templates or specifications that smuggle "../"
// segments into a destination are rejected before any plan is produced.
package sandbox

import (
	"path/filepath"
	"strings"

	"github.com/danieljhkim/repogen/internal/errors"
)

// Sandbox resolves relative destination paths under a fixed output root and
// rejects any path that escapes it.
type Sandbox struct {
	root string
}

// New creates a Sandbox for the given output root. The root does not need to
// exist yet; canonicalization is lexical (Abs + Clean).
func New(outputRoot string) (*Sandbox, error) {
	abs, err := filepath.Abs(outputRoot)
	if err != nil {
		return nil, errors.Wrap(errors.EUsage, "invalid output root", err)
	}
	return &Sandbox{root: filepath.Clean(abs)}, nil
}

// Root returns the canonicalized absolute output root.
func (s *Sandbox) Root() string {
	return s.root
}

// Resolve joins a relative destination under the output root and verifies
// strict containment: the canonicalized result must begin with the root plus
// a separator. The root itself is not a valid destination. Violations are
// security errors and abort the whole run.
func (s *Sandbox) Resolve(relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", errors.Newf(errors.ESecurity, "destination %q is absolute, must be relative to the output root", relPath)
	}

	resolved := filepath.Clean(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if !strings.HasPrefix(resolved, s.root+string(filepath.Separator)) {
		return "", errors.Newf(errors.ESecurity, "destination %q escapes the output root %q", relPath, s.root)
	}

	return resolved, nil
}
