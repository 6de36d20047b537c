package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/repogen/internal/engine"
	"github.com/danieljhkim/repogen/internal/errors"
	"github.com/danieljhkim/repogen/internal/fsops"
	"github.com/danieljhkim/repogen/internal/planner"
)

var (
	planRoot       string
	planAllowPaths []string
	planPolicy     string
	planOut        string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the generation plan without touching the filesystem",
	Long: `Plan validates the specification, selects templates, and computes the
directories and files an apply would produce, plus any conflicts with
pre-existing files. Plan never creates the output root or writes any file.

Under the default "fail" conflict policy, a plan with conflicts exits with
the conflict signal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		policy, err := engine.ParsePolicy(planPolicy)
		if err != nil {
			return err
		}

		result, err := eng.Plan(&engine.PlanRequest{
			SpecPath:      specPath,
			TemplatesRoot: templatesRoot,
			OutputRoot:    planRoot,
			AllowPaths:    planAllowPaths,
			Strict:        strictMode,
		})
		if err != nil {
			return err
		}

		if planOut != "" {
			if err := persistPlan(result.Plan, planOut); err != nil {
				return err
			}
		}

		if jsonOutput() {
			if err := outputJSON(result.Plan); err != nil {
				return err
			}
		} else {
			printPlan(result.Plan)
		}

		if policy == engine.PolicyFail && result.Plan.HasConflicts() {
			return errors.Newf(errors.EConflict, "%s detected",
				PrintCount(len(result.Plan.Conflicts), "conflict", "conflicts"))
		}
		return nil
	},
}

// persistPlan writes the externally reported plan JSON to a file.
func persistPlan(plan *planner.Plan, path string) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to encode plan", err)
	}
	data = append(data, '\n')
	if err := fsops.NewRealFS().AtomicWrite(path, data, 0644); err != nil {
		return errors.Wrap(errors.EInternal, "failed to persist plan to "+path, err)
	}
	return nil
}

// printPlan renders the plan for human consumption.
func printPlan(plan *planner.Plan) {
	PrintSection("Plan")

	if len(plan.Mkdir) > 0 {
		PrintSubsection("Directories:")
		PrintList(plan.Mkdir, 1)
	}

	if len(plan.Writes) > 0 {
		PrintSubsection("Files:")
		files := make([]string, 0, len(plan.Writes))
		for _, w := range plan.Writes {
			files = append(files, fmt.Sprintf("%s (from %s)", w.Path, w.Template))
		}
		PrintList(files, 1)
	}

	if plan.HasConflicts() {
		PrintSubsection("Conflicts:")
		PrintList(plan.Conflicts, 1)
	}

	PrintInfo("")
	PrintInfo(fmt.Sprintf("%s, %s, %s",
		PrintCount(plan.Summary.Mkdir, "directory", "directories"),
		PrintCount(plan.Summary.WriteFile, "file write", "file writes"),
		PrintCount(plan.Summary.Conflicts, "conflict", "conflicts")))
}

func init() {
	planCmd.Flags().StringVarP(&planRoot, "root", "r", "", "Output root directory (required)")
	planCmd.Flags().StringArrayVar(&planAllowPaths, "allow-path", nil, "Allow-list glob for destinations (repeatable)")
	planCmd.Flags().StringVar(&planPolicy, "on-conflict", "fail", "Conflict policy (fail|skip|overwrite|prompt)")
	planCmd.Flags().StringVar(&planOut, "plan-out", "", "Persist the plan JSON to this file")
	_ = planCmd.MarkFlagRequired("root")
}
