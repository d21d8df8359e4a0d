package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bayrell/baylang-cli/internal/config"
	"github.com/bayrell/baylang-cli/internal/fetch"
	"github.com/bayrell/baylang-cli/internal/publish"
	"github.com/bayrell/baylang-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initRoot          string
	initFetchPolicy   string
	initRuntimeURL    string
	initPackageAssets string
)

func init() {
	initCmd.Flags().StringVar(&initRoot, "root", ".", "Project root directory")
	initCmd.Flags().StringVar(&initFetchPolicy, "fetch-policy", "", "What to do when the Vue runtime download fails: fail, warn or empty")
	initCmd.Flags().StringVar(&initRuntimeURL, "runtime-url", "", "Override the Vue runtime URL")
	initCmd.Flags().StringVar(&initPackageAssets, "package-assets", "", "Runtime package asset directory to publish")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init BayLang project",
	Long: `Create a BayLang starter project in the project root.

Writes project.json, app/module.json, a CSS block, an index page with its
model and the module description. Files that already exist are left
untouched, so init can be re-run safely. Afterwards the runtime package
assets are published (always overwritten) and the Vue runtime is downloaded
to public/assets/core/ if it is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveTargetConfig(cmd, initRoot)
		if err != nil {
			return err
		}

		s, err := scaffold.New(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Init BayLang")
		fmt.Fprintln(out)

		result, err := s.Scaffold(cmd.Context())
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}

		printResult(cmd, result)
		return nil
	},
}

// resolveTargetConfig merges init flags over config values. Commands without
// those flags get the configured values.
func resolveTargetConfig(cmd *cobra.Command, root string) (scaffold.TargetConfig, error) {
	policyValue := config.Get(config.KeyFetchPolicy)
	if cmd.Flags().Changed("fetch-policy") {
		policyValue = initFetchPolicy
	}
	policy, err := fetch.ParsePolicy(policyValue)
	if err != nil {
		return scaffold.TargetConfig{}, err
	}

	assetURL := initRuntimeURL
	if assetURL == "" {
		if assetURL, err = config.RuntimeURL(); err != nil {
			return scaffold.TargetConfig{}, err
		}
	}

	return scaffold.TargetConfig{
		Root:          root,
		Progress:      cmd.OutOrStdout(),
		Fetcher:       fetch.New(fetch.WithProgress(cmd.ErrOrStderr())),
		Publisher:     publish.Dir{},
		AssetURL:      assetURL,
		PackageAssets: packageAssets(initPackageAssets),
		FetchPolicy:   policy,
	}, nil
}

func packageAssets(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(config.KeyPackageAssets)
}

func printResult(cmd *cobra.Command, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nProject ready at %s (%d created, %d skipped)\n",
		filepath.Clean(result.Root), len(result.Created), len(result.Skipped))
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}
