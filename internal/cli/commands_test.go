package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/danieljhkim/repogen/internal/errors"
)

const testSpec = `{
  "specVersion": "1",
  "repo": {"name": "demo-app"},
  "archetype": {
    "type": "python",
    "components": ["base"]
  }
}`

func writeTestSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repogen.json")
	if err := os.WriteFile(path, []byte(testSpec), 0644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}
	return path
}

func writeTestLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "base")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create library: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md.tmpl"), []byte("# ${repo.name}\n"), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return root
}

// resetFlags restores flag state after a test run; cobra keeps flag values
// across Execute calls within a process.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		specPath = "repogen.json"
		templatesRoot = "templates"
		outputFormat = "text"
		strictMode = false
		schemaHint = ""
		planRoot = ""
		planAllowPaths = nil
		planPolicy = "fail"
		planOut = ""
		applyRoot = ""
		applyAllowPaths = nil
		applyPolicy = "fail"
		applyConfirm = false
		applyForce = false
		applyAllowExisting = false
		for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), planCmd.Flags(), applyCmd.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
	})
}

func TestNeedsDefaultCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", nil, true},
		{"flags only", []string{"-s", "spec.json", "--root", "out"}, true},
		{"explicit plan", []string{"plan", "--root", "out"}, false},
		{"explicit apply", []string{"apply"}, false},
		{"explicit validate", []string{"validate"}, false},
		{"help subcommand", []string{"help"}, false},
		{"help flag", []string{"--help"}, false},
		{"short help flag", []string{"-h"}, false},
		{"version flag", []string{"--version"}, false},
		{"version subcommand", []string{"version"}, false},
		{"completion", []string{"completion", "bash"}, false},
		{"unknown word defaults to plan", []string{"out-dir"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsDefaultCommand(tt.args); got != tt.want {
				t.Errorf("needsDefaultCommand(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestCheckOutputFormat(t *testing.T) {
	resetFlags(t)

	outputFormat = "text"
	if err := checkOutputFormat(); err != nil {
		t.Errorf("text: unexpected error %v", err)
	}
	outputFormat = "json"
	if err := checkOutputFormat(); err != nil {
		t.Errorf("json: unexpected error %v", err)
	}
	outputFormat = "yaml"
	err := checkOutputFormat()
	if err == nil {
		t.Fatal("yaml: expected usage error")
	}
	if errors.GetCode(err) != errors.EUsage {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EUsage)
	}
}

func TestExecuteValidate(t *testing.T) {
	resetFlags(t)

	err := ExecuteArgs([]string{"validate", "-s", writeTestSpec(t)})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestExecuteValidate_MissingSpec(t *testing.T) {
	resetFlags(t)

	err := ExecuteArgs([]string{"validate", "-s", filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected an error for a missing spec file")
	}
	if got := errors.ExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}

func TestExecutePlan(t *testing.T) {
	resetFlags(t)

	outputRoot := filepath.Join(t.TempDir(), "out")
	err := ExecuteArgs([]string{
		"plan",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", outputRoot,
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if _, err := os.Stat(outputRoot); !os.IsNotExist(err) {
		t.Error("plan must not create the output root")
	}
}

func TestExecutePlan_DefaultCommand(t *testing.T) {
	resetFlags(t)

	// no subcommand named: plan is implied
	err := ExecuteArgs([]string{
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", filepath.Join(t.TempDir(), "out"),
	})
	if err != nil {
		t.Fatalf("default plan failed: %v", err)
	}
}

func TestExecutePlan_MissingRoot(t *testing.T) {
	resetFlags(t)

	// the required-flag error comes from cobra and must still map to the
	// usage exit signal
	err := ExecuteArgs([]string{"plan", "-s", writeTestSpec(t), "-t", writeTestLibrary(t)})
	if err == nil {
		t.Fatal("expected usage error")
	}
	if got := errors.ExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2 (err=%v)", got, err)
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	resetFlags(t)

	err := ExecuteArgs([]string{"plan", "--bogus"})
	if err == nil {
		t.Fatal("expected usage error")
	}
	if got := errors.ExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2 (err=%v)", got, err)
	}
}

func TestExecutePlan_ConflictUnderFailPolicy(t *testing.T) {
	resetFlags(t)

	outputRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(outputRoot, "README.md"), []byte("old"), 0644); err != nil {
		t.Fatalf("failed to seed conflict: %v", err)
	}

	err := ExecuteArgs([]string{
		"plan",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", outputRoot,
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if got := errors.ExitCode(err); got != 3 {
		t.Errorf("exit code = %d, want 3", got)
	}
	// reporting a conflict is not a mutation
	data, _ := os.ReadFile(filepath.Join(outputRoot, "README.md"))
	if string(data) != "old" {
		t.Errorf("plan modified an existing file: %q", data)
	}
}

func TestExecutePlan_WritesPlanFile(t *testing.T) {
	resetFlags(t)

	planOut := filepath.Join(t.TempDir(), "plan.json")
	err := ExecuteArgs([]string{
		"plan",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", filepath.Join(t.TempDir(), "out"),
		"--plan-out", planOut,
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if _, err := os.Stat(planOut); err != nil {
		t.Errorf("expected plan file at %s: %v", planOut, err)
	}
}

func TestExecuteApply(t *testing.T) {
	resetFlags(t)

	outputRoot := filepath.Join(t.TempDir(), "out")
	err := ExecuteArgs([]string{
		"apply",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", outputRoot,
		"--confirm",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputRoot, "README.md")); err != nil {
		t.Errorf("expected README.md: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputRoot, ".repogen", "manifest.json")); err != nil {
		t.Errorf("expected manifest: %v", err)
	}
}

func TestExecuteApply_RequiresConfirm(t *testing.T) {
	resetFlags(t)

	err := ExecuteArgs([]string{
		"apply",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", filepath.Join(t.TempDir(), "out"),
	})
	if err == nil {
		t.Fatal("expected usage error")
	}
	if got := errors.ExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}

func TestExecuteApply_BadPolicy(t *testing.T) {
	resetFlags(t)

	err := ExecuteArgs([]string{
		"apply",
		"-s", writeTestSpec(t),
		"-t", writeTestLibrary(t),
		"--root", filepath.Join(t.TempDir(), "out"),
		"--confirm",
		"--on-conflict", "merge",
	})
	if err == nil {
		t.Fatal("expected usage error")
	}
	if errors.GetCode(err) != errors.EUsage {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EUsage)
	}
}
