package render

import (
	"strings"
	"unicode"

	"github.com/danieljhkim/repogen/internal/spec"
)

// Context is the read-only placeholder-resolution environment. It is built
// once per run from a validated specification.
type Context struct {
	root Value
}

// BuildContext derives the rendering context from a specification. It never
// fails; params defaults to an empty mapping when absent.
func BuildContext(s *spec.Specification) *Context {
	params := s.Params
	if params == nil {
		params = map[string]any{}
	}

	archetype := map[string]Value{
		"type":       Scalar(s.Archetype.Type),
		"components": FromAny(s.Archetype.Components),
	}
	if s.Archetype.Variant != "" {
		archetype["variant"] = Scalar(s.Archetype.Variant)
	}
	if s.Archetype.Features != nil {
		archetype["features"] = FromAny(s.Archetype.Features)
	}

	root := Mapping(map[string]Value{
		"repo": Mapping(map[string]Value{
			"name": Scalar(s.Repo.Name),
		}),
		"archetype": Mapping(archetype),
		"params":    FromAny(params),
		"derived": Mapping(map[string]Value{
			"package_name": Scalar(PackageName(s.Repo.Name)),
		}),
	})

	return &Context{root: root}
}

// Resolve looks up a dotted path in the context. The second result is false
// when any segment is missing.
func (c *Context) Resolve(dotted string) (Value, bool) {
	return c.root.Lookup(dotted)
}

// PackageName derives a package-safe name from a repository name: lowercase,
// runs of non-alphanumeric characters collapsed to a single underscore,
// leading and trailing underscores trimmed.
func PackageName(repoName string) string {
	var b strings.Builder
	lastSep := false
	for _, r := range strings.ToLower(repoName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}
	return strings.Trim(b.String(), "_")
}
