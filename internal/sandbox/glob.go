package sandbox

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/repogen/internal/errors"
)

// AllowList is a hard allow-list of destination glob patterns.
//
// Matching semantics: "*" matches within a single path segment, "**" matches
// across segments (including zero), "?" matches exactly one character.
// Candidate paths are slash-separated relative destinations. An empty
// AllowList permits everything; a non-empty one rejects any destination that
// matches no pattern.
type AllowList struct {
	patterns []string
}

// NewAllowList validates the given patterns and returns an AllowList.
// An invalid pattern is a usage error.
func NewAllowList(patterns []string) (*AllowList, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Newf(errors.EUsage, "invalid allow-path pattern %q", p)
		}
	}
	return &AllowList{patterns: patterns}, nil
}

// Empty reports whether the allow-list has no patterns.
func (a *AllowList) Empty() bool {
	return a == nil || len(a.patterns) == 0
}

// Match reports whether the slash-separated relative path matches at least
// one pattern. An empty allow-list matches everything.
func (a *AllowList) Match(relPath string) bool {
	if a.Empty() {
		return true
	}
	for _, p := range a.patterns {
		// Patterns were validated in NewAllowList
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
	}
	return false
}

// Check returns a security error if the path is rejected by the allow-list.
func (a *AllowList) Check(relPath string) error {
	if a.Match(relPath) {
		return nil
	}
	return errors.Newf(errors.ESecurity, "destination %q is not permitted by the allow-path list", relPath)
}
