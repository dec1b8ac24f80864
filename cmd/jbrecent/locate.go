package main

import (
	"fmt"

	"github.com/fyrsmithlabs/jbrecent/internal/locator"
	"github.com/fyrsmithlabs/jbrecent/internal/logging"
	"github.com/fyrsmithlabs/jbrecent/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// locateCmd prints discovered IDE installations
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show discovered JetBrains installations and their recent projects files",
	Long: `Show the JetBrains IDE settings directories found under the configured
config roots, with the recent projects files each one holds.

Examples:
  # Every version of every IDE
  jbrecent locate --all-versions

  # Only PyCharm editions
  jbrecent locate --product pycharm`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	format, err := selectedFormat(cmd)
	if err != nil {
		return err
	}

	installs, err := locateInstallations(cmd)
	if err != nil {
		return err
	}
	return render.Installations(cmd.OutOrStdout(), format, installs)
}

// locateInstallations runs the locator with config values overridden by flags.
func locateInstallations(cmd *cobra.Command) ([]locator.Installation, error) {
	opts := locator.Options{
		Roots:      cfg.JetBrains.ConfigRoots,
		Products:   cfg.JetBrains.Products,
		LatestOnly: cfg.JetBrains.LatestOnly,
	}
	if cmd.Flags().Changed("product") {
		opts.Products = products
	}
	if allVersions {
		opts.LatestOnly = false
	}

	installs, err := locator.Locate(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to locate JetBrains installations: %w", err)
	}

	log := logging.FromContext(cmd.Context())
	for _, in := range installs {
		log.Debug(logging.WithProduct(cmd.Context(), in.Product), "found installation",
			zap.String("dir", in.Dir),
			zap.Strings("files", in.Files),
		)
	}
	return installs, nil
}
