package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bayrell/baylang-cli/internal/publish"
	"github.com/bayrell/baylang-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	publishRoot          string
	publishPackageAssets string
	publishForce         bool
)

func init() {
	publishCmd.Flags().StringVar(&publishRoot, "root", ".", "Project root directory")
	publishCmd.Flags().StringVar(&publishPackageAssets, "package-assets", "", "Runtime package asset directory to publish")
	publishCmd.Flags().BoolVar(&publishForce, "force", true, "Overwrite assets already present in the project")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish runtime assets into public/assets/core",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(publishRoot)
		if err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}
		src := packageAssets(publishPackageAssets)
		if !filepath.IsAbs(src) {
			src = filepath.Join(root, src)
		}
		dst := filepath.Join(root, filepath.FromSlash(scaffold.PublicAssetsDir))

		report := scaffold.NewReporter(cmd.OutOrStdout())
		result, err := publish.Dir{}.Publish(src, dst, publishForce)
		if errors.Is(err, publish.ErrSourceMissing) {
			return fmt.Errorf("%w (set --package-assets or 'baylang config set package_assets <dir>')", err)
		}
		if err != nil {
			return err
		}

		for _, p := range result.Copied {
			report.Created(filepath.ToSlash(filepath.Join(scaffold.PublicAssetsDir, p)))
		}
		for _, p := range result.Skipped {
			report.Skipped(filepath.ToSlash(filepath.Join(scaffold.PublicAssetsDir, p)), "already exists")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nPublished %d file(s) from %s\n", len(result.Copied), src)
		return nil
	},
}
