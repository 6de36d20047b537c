package library

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/spec"
)

// Select resolves the ordered set of template entries for the archetype's
// component list. Each declared component must exist as a subdirectory of the
// library root; a missing component is a packaging error, not a specification
// error. If the archetype declares a variant and a matching type/variant
// subdirectory exists, its templates are appended as an optional overlay.
func Select(filesystem fsops.FS, libraryRoot string, archetype spec.Archetype) ([]Entry, error) {
	var entries []Entry

	for _, component := range archetype.Components {
		dir := filepath.Join(libraryRoot, component)
		info, err := filesystem.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, errors.Newf(errors.EMissingComponent, "template component %q not found under %s", component, libraryRoot)
		}

		found, err := collect(filesystem, dir, component)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	if archetype.Variant != "" {
		overlay := path.Join(archetype.Type, archetype.Variant)
		dir := filepath.Join(libraryRoot, filepath.FromSlash(overlay))
		if info, err := filesystem.Stat(dir); err == nil && info.IsDir() {
			found, err := collect(filesystem, dir, overlay)
			if err != nil {
				return nil, err
			}
			entries = append(entries, found...)
		}
		// Absent variant overlays are silently skipped
	}

	return entries, nil
}

// collect walks a component root and returns all template files under it,
// recursively, in lexical order.
func collect(filesystem fsops.FS, root, rootName string) ([]Entry, error) {
	var entries []Entry
	err := filesystem.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Source:  p,
			Root:    rootName,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, fmt.Sprintf("failed to scan template component %q", rootName), err)
	}
	return entries, nil
}
