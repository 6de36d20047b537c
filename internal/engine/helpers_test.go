package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/repogen/internal/clock"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/hash"
)

// newTestEngine returns an engine with a real filesystem and hasher and a
// fixed clock.
func newTestEngine() *Engine {
	return New(
		fsops.NewRealFS(),
		hash.NewSHA256Hasher(),
		clock.NewFakeClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		"test",
	)
}

// writeSpecFile writes a specification to a temp dir and returns its path.
func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repogen.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}
	return path
}

// writeTemplateLibrary creates a template library from library-relative paths
// to contents and returns its root.
func writeTemplateLibrary(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}
	}
	return root
}

// minimalSpec is a valid specification with components base, ci, python-app.
const minimalSpec = `{
  "specVersion": "1",
  "repo": {"name": "demo-app"},
  "archetype": {
    "type": "python",
    "components": ["base", "ci", "python-app"]
  }
}`

// minimalLibrary returns a library satisfying minimalSpec.
func minimalLibrary(t *testing.T) string {
	t.Helper()
	return writeTemplateLibrary(t, map[string]string{
		"base/README.md.tmpl":              "# ${repo.name}\n",
		"ci/.github/workflows/ci.yml.tmpl": "name: ci\n",
		"python-app/src/app.py.tmpl":       "print('${derived.package_name}')\n",
	})
}

// fakePrompter implements Prompter for tests.
type fakePrompter struct {
	interactive bool
	answer      bool
	asked       []string
}

func (p *fakePrompter) Interactive() bool {
	return p.interactive
}

func (p *fakePrompter) Confirm(prompt string) (bool, error) {
	p.asked = append(p.asked, prompt)
	return p.answer, nil
}
