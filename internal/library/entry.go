// Package library discovers template files in the template library and
// resolves which templates are in play for an archetype's component list.
package library

import "path"

// Suffix marks a library file as a template. The destination path is the
// library-relative path with this suffix removed.
const Suffix = ".tmpl"

// Entry identifies one template file in the library.
type Entry struct {
	// Source is the absolute filesystem path of the template file
	Source string

	// Root names the component or variant overlay the entry was discovered
	// under (e.g. "ci" or "python-app/service")
	Root string

	// RelPath is the slash-separated path relative to Root, including Suffix
	RelPath string
}

// ID returns the template identity used for plan reporting: the discovery
// root joined with the relative path.
func (e Entry) ID() string {
	return path.Join(e.Root, e.RelPath)
}

// DestRelPath returns the slash-separated destination path relative to the
// output root: the relative path with the template suffix removed.
func (e Entry) DestRelPath() string {
	return e.RelPath[:len(e.RelPath)-len(Suffix)]
}
