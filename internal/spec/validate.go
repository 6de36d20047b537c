package spec

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/repogen/internal/errors"
)

// Allowlists are the strict-mode key allow-lists. They are plain data passed
// explicitly into Validate so validation stays a pure function of
// (document, strictness, allow-lists).
type Allowlists struct {
	Top       []string
	Repo      []string
	Archetype []string
}

// DefaultAllowlists returns the allow-lists for the supported schema.
func DefaultAllowlists() Allowlists {
	return Allowlists{
		Top:       []string{"specVersion", "repo", "archetype", "params"},
		Repo:      []string{"name"},
		Archetype: []string{"type", "variant", "components", "features"},
	}
}

// Validate checks the shape and required fields of a parsed specification
// document. It fails with a validation error on the first violation. In
// strict mode it additionally rejects any key outside the allow-lists, which
// guards against silently-ignored typos.
func Validate(doc map[string]any, strict bool, allow Allowlists) error {
	version, ok := doc["specVersion"].(string)
	if !ok || version != SupportedVersion {
		return errors.Newf(errors.EValidation, "specVersion must be %q, got %v", SupportedVersion, doc["specVersion"])
	}

	repo, ok := doc["repo"].(map[string]any)
	if !ok {
		return errors.New(errors.EValidation, "repo must be present and be a mapping")
	}
	name, _ := repo["name"].(string)
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.EValidation, "repo.name must be a non-empty string")
	}

	archetype, ok := doc["archetype"].(map[string]any)
	if !ok {
		return errors.New(errors.EValidation, "archetype must be present and be a mapping")
	}
	archetypeType, _ := archetype["type"].(string)
	if strings.TrimSpace(archetypeType) == "" {
		return errors.New(errors.EValidation, "archetype.type must be a non-empty string")
	}

	components, ok := archetype["components"].([]any)
	if !ok {
		return errors.New(errors.EValidation, "archetype.components must be present and be a sequence")
	}
	if len(components) == 0 {
		return errors.New(errors.EValidation, "archetype.components must not be empty")
	}
	for i, c := range components {
		s, ok := c.(string)
		if !ok || s == "" {
			return errors.Newf(errors.EValidation, "archetype.components[%d] must be a non-empty string", i)
		}
	}

	if params, present := doc["params"]; present {
		if _, ok := params.(map[string]any); !ok {
			return errors.New(errors.EValidation, "params must be a mapping")
		}
	}

	if strict {
		if err := checkKnownKeys("", doc, allow.Top); err != nil {
			return err
		}
		if err := checkKnownKeys("repo", repo, allow.Repo); err != nil {
			return err
		}
		if err := checkKnownKeys("archetype", archetype, allow.Archetype); err != nil {
			return err
		}
	}

	return nil
}

// checkKnownKeys rejects any key of m not present in the allow-list.
func checkKnownKeys(prefix string, m map[string]any, allowed []string) error {
	for key := range m {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			qualified := key
			if prefix != "" {
				qualified = fmt.Sprintf("%s.%s", prefix, key)
			}
			return errors.Newf(errors.EValidation, "unknown key %q in specification (strict mode)", qualified)
		}
	}
	return nil
}
