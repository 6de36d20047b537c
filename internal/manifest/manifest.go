// Package manifest defines the post-apply integrity record persisted under
// the output root.
//
// The manifest is written after every apply attempt that reaches the write
// phase, even when zero files were actually written, and it reflects exactly
// the set of files written during that apply. It is overwritten on each
// successful apply; there is one manifest per output root.
package manifest

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
)

// Dir is the metadata directory under the output root.
const Dir = ".repogen"

// FileName is the manifest file name within Dir.
const FileName = "manifest.json"

// Path returns the manifest path for an output root.
func Path(outputRoot string) string {
	return filepath.Join(outputRoot, Dir, FileName)
}

// Manifest is the post-apply integrity record.
type Manifest struct {
	// SpecHash is the content hash of the specification file
	SpecHash string `json:"specHash"`

	// ToolVersion is the repogen version that performed the apply
	ToolVersion string `json:"toolVersion"`

	// AppliedAt is the apply timestamp
	AppliedAt time.Time `json:"appliedAt"`

	// Archetype is the archetype identity the apply used
	Archetype Archetype `json:"archetype"`

	// Components is the resolved component list, in order
	Components []string `json:"components"`

	// Files lists every file actually written, with content hashes
	Files []FileEntry `json:"files"`
}

// Archetype is the archetype identity recorded in the manifest.
type Archetype struct {
	Type    string `json:"type"`
	Variant string `json:"variant,omitempty"`
}

// FileEntry records one written file.
type FileEntry struct {
	// Path is the destination path relative to the output root
	Path string `json:"path"`

	// ContentHash is the hash of the bytes written
	ContentHash string `json:"contentHash"`
}

// Write persists the manifest under the output root, overwriting any
// previous one.
func Write(fs fsops.FS, outputRoot string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to encode manifest", err)
	}
	data = append(data, '\n')
	if err := fs.AtomicWrite(Path(outputRoot), data, 0644); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write manifest", err)
	}
	return nil
}

// Read loads the manifest from an output root.
func Read(fs fsops.FS, outputRoot string) (*Manifest, error) {
	data, err := fs.ReadFile(Path(outputRoot))
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to read manifest", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.EInternal, "malformed manifest", err)
	}
	return &m, nil
}
