package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/repogen/internal/config"
	"github.com/danieljhkim/repogen/internal/errors"
)

var (
	// Global flags
	specPath      string
	templatesRoot string
	outputFormat  string
	strictMode    bool
	schemaHint    string
)

// rootCmd is the root command for repogen.
var rootCmd = &cobra.Command{
	Use:     "repogen",
	Version: "dev",
	Short:   "Spec-driven repository scaffolder",
	Long: `repogen deterministically plans and applies repository scaffolding from a
declarative specification (project name, archetype, components, parameters).

'plan' computes a side-effect-free description of the directories and files an
apply would produce; 'apply' executes an approved plan under a conflict policy
and writes an integrity manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the version reported by --version and recorded in the
// manifest.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&specPath, "spec", "s", "repogen.json", "Specification file path")
	rootCmd.PersistentFlags().StringVarP(&templatesRoot, "templates", "t", config.DefaultPaths().Templates, "Template library root")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Enable strict validation (unknown keys, plan-time placeholder resolution, unused parameters)")
	rootCmd.PersistentFlags().StringVar(&schemaHint, "schema", "", "Schema hint (accepted and ignored)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the repogen CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: `Generate the autocompletion script for repogen for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	rootCmd.AddCommand(completionCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(applyCmd)
}

// subcommands lists the names that suppress the default-plan behavior.
var subcommands = []string{"validate", "plan", "apply", "help", "version", "completion"}

// Execute executes the root command. When invoked without a subcommand,
// "plan" is the default.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs executes the root command with explicit arguments.
func ExecuteArgs(args []string) error {
	if needsDefaultCommand(args) {
		args = append([]string{"plan"}, args...)
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// Errors raised by cobra itself (unknown flags, bad flag values,
		// required flags not set) carry no code; they are usage errors.
		if !errors.Coded(err) {
			return errors.Wrap(errors.EUsage, err.Error(), err)
		}
		return err
	}
	return nil
}

// needsDefaultCommand reports whether the argument list names no subcommand
// and no help/version request.
func needsDefaultCommand(args []string) bool {
	if len(args) == 0 {
		return true
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		for _, a := range args {
			if a == "--help" || a == "-h" || a == "--version" {
				return false
			}
		}
		return true
	}
	for _, name := range subcommands {
		if first == name {
			return false
		}
	}
	return true
}
