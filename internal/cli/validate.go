package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/repogen/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a specification file",
	Long: `Validate checks the specification's shape and required fields without
touching the template library or the filesystem.

With --strict, unknown keys at the top level, under repo, or under archetype
are rejected as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Validate(&engine.ValidateRequest{
			SpecPath: specPath,
			Strict:   strictMode,
		})
		if err != nil {
			return err
		}

		if jsonOutput() {
			return outputJSON(map[string]any{
				"valid":    true,
				"specHash": result.SpecHash,
				"repo":     result.Spec.Repo.Name,
			})
		}

		PrintSuccess("Specification is valid")
		PrintLabelValue("Repo", result.Spec.Repo.Name)
		PrintLabelValue("Archetype", result.Spec.Archetype.Type)
		PrintLabelValue("Spec hash", result.SpecHash)
		return nil
	},
}
