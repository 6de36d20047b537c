// Package spec defines the declarative specification model and its loading
// and validation.
//
// A specification is loaded from a JSON or YAML file into a loose document
// (map[string]any), shape-checked by Validate, and then decoded into the
// typed Specification via mapstructure. The raw bytes are retained so the
// manifest can record a content hash of exactly what the user supplied.
package spec

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
)

// SupportedVersion is the only specVersion this tool accepts.
const SupportedVersion = "1"

// Specification is the declarative input describing the desired repository.
// Immutable once loaded.
type Specification struct {
	// SpecVersion must equal SupportedVersion
	SpecVersion string `json:"specVersion" mapstructure:"specVersion"`

	// Repo identifies the repository to generate
	Repo Repo `json:"repo" mapstructure:"repo"`

	// Archetype selects the project shape and template overlays
	Archetype Archetype `json:"archetype" mapstructure:"archetype"`

	// Params is an optional mapping of placeholder parameters
	Params map[string]any `json:"params,omitempty" mapstructure:"params"`
}

// Repo identifies the repository being generated.
type Repo struct {
	// Name is the repository name (non-empty)
	Name string `json:"name" mapstructure:"name"`
}

// Archetype is the named project shape selecting template overlays.
type Archetype struct {
	// Type is the archetype type (non-empty)
	Type string `json:"type" mapstructure:"type"`

	// Variant is an optional archetype variant overlay
	Variant string `json:"variant,omitempty" mapstructure:"variant"`

	// Components is the ordered list of template components to apply
	Components []string `json:"components" mapstructure:"components"`

	// Features is opaque data passed through to the rendering context
	Features any `json:"features,omitempty" mapstructure:"features"`
}

// File holds a loaded specification document before typed decoding.
type File struct {
	// Raw is the exact bytes read from disk (hashed into the manifest)
	Raw []byte

	// Doc is the parsed document
	Doc map[string]any
}

// Load reads and parses a specification file. Files ending in .yaml or .yml
// are parsed as YAML; everything else is parsed as JSON.
func Load(fs fsops.FS, path string) (*File, error) {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.EUsage, "failed to read specification file "+path, err)
	}

	doc := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrap(errors.EValidation, "malformed specification", err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrap(errors.EValidation, "malformed specification", err)
		}
	}

	return &File{Raw: raw, Doc: doc}, nil
}

// Decode converts a validated document into a typed Specification.
// Call Validate first; Decode performs no shape checks of its own.
func Decode(doc map[string]any) (*Specification, error) {
	var s Specification
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &s,
	})
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to build specification decoder", err)
	}
	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrap(errors.EValidation, "malformed specification", err)
	}
	return &s, nil
}
