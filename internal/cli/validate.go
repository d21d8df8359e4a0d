package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bayrell/baylang-cli/internal/manifest"
	"github.com/bayrell/baylang-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var validateRoot string

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", ".", "Project root directory")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate project.json and app/module.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := scaffold.NewReporter(cmd.OutOrStdout())
		paths := []string{
			filepath.Join(validateRoot, manifest.ProjectFile),
			filepath.Join(validateRoot, "app", manifest.ModuleFile),
		}

		invalid := 0
		for _, p := range paths {
			if _, err := os.Stat(p); os.IsNotExist(err) {
				r.Fail("%s: not found (run 'baylang init')", p)
				invalid++
				continue
			}
			result, err := manifest.ValidateFile(p)
			if err != nil {
				return fmt.Errorf("validating %s: %w", p, err)
			}
			if result.Valid {
				r.OK("%s", p)
				continue
			}
			invalid++
			r.Fail("%s", p)
			for _, issue := range result.Issues {
				r.Info("    - %s", issue)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d manifest(s) invalid", invalid)
		}
		return nil
	},
}
