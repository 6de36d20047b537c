package engine

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danieljhkim/repogen/internal/errors"
)

func TestPlan_NoMutation(t *testing.T) {
	eng := newTestEngine()
	outputRoot := filepath.Join(t.TempDir(), "out")

	result, err := eng.Plan(&PlanRequest{
		SpecPath:      writeSpecFile(t, minimalSpec),
		TemplatesRoot: minimalLibrary(t),
		OutputRoot:    outputRoot,
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(result.Plan.Writes) != 3 {
		t.Errorf("got %d writes, want 3", len(result.Plan.Writes))
	}
	if _, err := os.Stat(outputRoot); !os.IsNotExist(err) {
		t.Error("plan must not create the output root")
	}
}

func TestPlan_Idempotent(t *testing.T) {
	eng := newTestEngine()
	req := &PlanRequest{
		SpecPath:      writeSpecFile(t, minimalSpec),
		TemplatesRoot: minimalLibrary(t),
		OutputRoot:    filepath.Join(t.TempDir(), "out"),
	}

	first, err := eng.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	second, err := eng.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if !reflect.DeepEqual(first.Plan.Mkdir, second.Plan.Mkdir) {
		t.Errorf("Mkdir differs between runs")
	}
	if !reflect.DeepEqual(first.Plan.Writes, second.Plan.Writes) {
		t.Errorf("Writes differ between runs")
	}
	if !reflect.DeepEqual(first.Plan.Conflicts, second.Plan.Conflicts) {
		t.Errorf("Conflicts differ between runs")
	}
	if first.SpecHash != second.SpecHash {
		t.Errorf("SpecHash differs between runs")
	}
}

func TestPlan_MissingComponent(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.Plan(&PlanRequest{
		SpecPath: writeSpecFile(t, `{
  "specVersion": "1",
  "repo": {"name": "demo"},
  "archetype": {"type": "python", "components": ["ghost"]}
}`),
		TemplatesRoot: writeTemplateLibrary(t, map[string]string{
			"base/README.md.tmpl": "x",
		}),
		OutputRoot: filepath.Join(t.TempDir(), "out"),
	})
	if err == nil {
		t.Fatal("expected missing component error")
	}
	if got := errors.ExitCode(err); got != 4 {
		t.Errorf("exit code = %d, want 4", got)
	}
}

func TestPlan_RequiresOutputRoot(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.Plan(&PlanRequest{
		SpecPath:      writeSpecFile(t, minimalSpec),
		TemplatesRoot: minimalLibrary(t),
	})
	if err == nil {
		t.Fatal("expected usage error")
	}
	if errors.GetCode(err) != errors.EUsage {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EUsage)
	}
}

func TestValidate(t *testing.T) {
	eng := newTestEngine()

	t.Run("valid spec", func(t *testing.T) {
		result, err := eng.Validate(&ValidateRequest{SpecPath: writeSpecFile(t, minimalSpec)})
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if result.Spec.Repo.Name != "demo-app" {
			t.Errorf("Repo.Name = %q", result.Spec.Repo.Name)
		}
		if result.SpecHash == "" {
			t.Error("expected a spec hash")
		}
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := eng.Validate(&ValidateRequest{
			SpecPath: writeSpecFile(t, `{"specVersion":"1","repo":{"name":""},"archetype":{"type":"t","components":["base"]}}`),
		})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if got := errors.ExitCode(err); got != 2 {
			t.Errorf("exit code = %d, want 2", got)
		}
	})
}
