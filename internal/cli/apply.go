package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/repogen/internal/engine"
)

var (
	applyRoot          string
	applyAllowPaths    []string
	applyPolicy        string
	applyConfirm       bool
	applyForce         bool
	applyAllowExisting bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Execute the generation plan against the filesystem",
	Long: `Apply builds a fresh plan and executes it: creates directories, renders
templates, writes files under the selected conflict policy, and records an
integrity manifest at .repogen/manifest.json under the output root.

Apply refuses to run without --confirm, refuses the overwrite policy without
--force, and refuses an existing output root without --allow-existing-root.
Apply is not transactional: files written before a conflict failure remain on
disk and the manifest reflects exactly what was written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		policy, err := engine.ParsePolicy(applyPolicy)
		if err != nil {
			return err
		}

		result, err := eng.Apply(&engine.ApplyRequest{
			PlanRequest: engine.PlanRequest{
				SpecPath:      specPath,
				TemplatesRoot: templatesRoot,
				OutputRoot:    applyRoot,
				AllowPaths:    applyAllowPaths,
				Strict:        strictMode,
			},
			Policy:            policy,
			Confirm:           applyConfirm,
			Force:             applyForce,
			AllowExistingRoot: applyAllowExisting,
			Prompter:          newTerminalPrompter(),
		})
		if err != nil {
			if result != nil && len(result.Written) > 0 {
				PrintWarning(fmt.Sprintf("%s written before failure remain on disk",
					PrintCount(len(result.Written), "file", "files")))
			}
			return err
		}

		if jsonOutput() {
			return outputJSON(map[string]any{
				"written":  result.Written,
				"skipped":  result.Skipped,
				"manifest": result.ManifestPath,
			})
		}

		PrintSuccess(fmt.Sprintf("Applied %s", PrintCount(len(result.Written), "file", "files")))
		for _, entry := range result.Written {
			PrintLabelValue(entry.Path, entry.ContentHash[:12])
		}
		if len(result.Skipped) > 0 {
			PrintSubsection("Skipped:")
			PrintList(result.Skipped, 1)
		}
		PrintLabelValue("Manifest", result.ManifestPath)
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyRoot, "root", "r", "", "Output root directory (required)")
	applyCmd.Flags().StringArrayVar(&applyAllowPaths, "allow-path", nil, "Allow-list glob for destinations (repeatable)")
	applyCmd.Flags().StringVar(&applyPolicy, "on-conflict", "fail", "Conflict policy (fail|skip|overwrite|prompt)")
	applyCmd.Flags().BoolVar(&applyConfirm, "confirm", false, "Confirm that apply may mutate the filesystem (required)")
	applyCmd.Flags().BoolVarP(&applyForce, "force", "f", false, "Allow the overwrite policy")
	applyCmd.Flags().BoolVar(&applyAllowExisting, "allow-existing-root", false, "Allow applying into an output root that already exists")
	_ = applyCmd.MarkFlagRequired("root")
}
