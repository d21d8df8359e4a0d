package cli

import (
	"fmt"
	"io"

	"github.com/bayrell/baylang-cli/internal/config"
	"github.com/bayrell/baylang-cli/internal/fetch"
	"github.com/bayrell/baylang-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	doctorRoot string
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorRoot, "root", ".", "Project root directory")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Recreate missing starter files and re-download a placeholder runtime")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a BayLang project",
	Long: `Check that every starter file exists, both manifests validate and the
Vue runtime has been vendored. With --fix, missing files are recreated
the same way init does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		configOK := checkConfig(out)

		health, err := scaffold.Check(out, doctorRoot)
		if err != nil {
			return err
		}

		if doctorFix && (!health.OK() || len(health.Warnings) > 0) {
			return runDoctorFix(cmd)
		}

		if !configOK || !health.OK() {
			return fmt.Errorf("%d missing, %d invalid (run 'baylang doctor --fix')",
				len(health.Missing), len(health.Invalid))
		}
		return nil
	},
}

func checkConfig(w io.Writer) bool {
	r := scaffold.NewReporter(w)
	r.Info("Config check: %s", config.FilePath())

	ok := true
	if err := config.ValidateVueVersion(config.Get(config.KeyVueVersion)); err != nil {
		r.Fail("%v", err)
		ok = false
	} else {
		r.OK("%s = %s", config.KeyVueVersion, config.Get(config.KeyVueVersion))
	}
	if _, err := fetch.ParsePolicy(config.Get(config.KeyFetchPolicy)); err != nil {
		r.Fail("%v", err)
		ok = false
	} else {
		r.OK("%s = %s", config.KeyFetchPolicy, config.Get(config.KeyFetchPolicy))
	}
	return ok
}

func runDoctorFix(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nFixing:")

	removed, err := scaffold.RemovePlaceholder(doctorRoot)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(out, "  [FIX ] Removed empty %s\n", scaffold.RuntimeAssetPath)
	}

	cfg, err := resolveTargetConfig(cmd, doctorRoot)
	if err != nil {
		return err
	}
	s, err := scaffold.New(cfg)
	if err != nil {
		return err
	}
	result, err := s.Scaffold(cmd.Context())
	if err != nil {
		return fmt.Errorf("fixing project: %w", err)
	}
	printResult(cmd, result)
	return nil
}
