// Package config manages repogen configuration and filesystem paths.
//
// The only configurable location is the template library root, which can be
// overridden via the REPOGEN_TEMPLATES environment variable and defaults to
// a "templates" directory next to the working directory.
package config

import "os"

// DefaultTemplatesDir is the fallback template library root.
const DefaultTemplatesDir = "templates"

// Paths contains the filesystem paths used by repogen.
type Paths struct {
	// Templates is the template library root directory
	Templates string
}

// DefaultPaths returns the default paths for repogen.
// Paths can be overridden with environment variables:
// - REPOGEN_TEMPLATES: Override the template library root
func DefaultPaths() *Paths {
	templates := os.Getenv("REPOGEN_TEMPLATES")
	if templates == "" {
		templates = DefaultTemplatesDir
	}

	return &Paths{
		Templates: templates,
	}
}
