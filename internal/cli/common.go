package cli

import (
	"encoding/json"
	"os"

	"github.com/danieljhkim/repogen/internal/clock"
	"github.com/danieljhkim/repogen/internal/engine"
	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/hash"
)

// newEngine creates a new engine with real implementations of all
// dependencies.
func newEngine() (*engine.Engine, error) {
	if err := checkOutputFormat(); err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}

	return engine.New(fs, hasher, clk, rootCmd.Version), nil
}

// checkOutputFormat validates the global --output flag.
func checkOutputFormat() error {
	if outputFormat != "text" && outputFormat != "json" {
		return errors.Newf(errors.EUsage, "invalid output format %q (want text or json)", outputFormat)
	}
	return nil
}

// jsonOutput reports whether structured output was requested.
func jsonOutput() bool {
	return outputFormat == "json"
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.EInternal, "failed to encode output", err)
	}
	return nil
}

// ReportError reports a failure in the selected output format. Both forms
// carry the same exit code.
func ReportError(err error) {
	if jsonOutput() {
		enc := json.NewEncoder(os.Stderr)
		_ = enc.Encode(map[string]any{
			"error": err.Error(),
			"code":  errors.ExitCode(err),
		})
		return
	}
	PrintError(err.Error())
}
