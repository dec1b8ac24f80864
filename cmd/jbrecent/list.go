package main

import (
	"context"
	"errors"

	"github.com/fyrsmithlabs/jbrecent/internal/logging"
	"github.com/fyrsmithlabs/jbrecent/internal/project"
	"github.com/fyrsmithlabs/jbrecent/internal/render"
	"github.com/fyrsmithlabs/jbrecent/internal/userpath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// outputFormat overrides output.format
	outputFormat string
	// products overrides jetbrains.products
	products []string
	// allVersions disables jetbrains.latest_only
	allVersions bool
)

// listCmd prints recent projects
var listCmd = &cobra.Command{
	Use:   "list [file...]",
	Short: "List recent projects",
	Long: `List recently opened projects from JetBrains recent projects files.

Without arguments every installed IDE's recentProjects.xml and
recentProjectDirectories.xml are read. Projects are merged by path, first
occurrence wins.

Examples:
  # All recent projects, newest IDE first
  jbrecent list

  # Only GoLand, as JSON
  jbrecent list --product goland --format json

  # A specific file
  jbrecent list ~/.config/JetBrains/GoLand2024.2/options/recentProjects.xml`,
	RunE: runList,
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, locateCmd} {
		cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: table, json, yaml, toml")
		cmd.Flags().StringSliceVarP(&products, "product", "p", nil, "only IDEs whose product name starts with this (repeatable)")
		cmd.Flags().BoolVar(&allVersions, "all-versions", false, "read every installed version, not only the newest per product")
	}
}

// source is one recent projects file and the IDE it belongs to, if known.
type source struct {
	product string
	path    string
	// explicit sources were named on the command line.
	explicit bool
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, err := selectedFormat(cmd)
	if err != nil {
		return err
	}

	var sources []source
	if len(args) > 0 {
		for _, a := range args {
			sources = append(sources, source{path: userpath.Expand(a), explicit: true})
		}
	} else {
		installs, err := locateInstallations(cmd)
		if err != nil {
			return err
		}
		for _, in := range installs {
			for _, f := range in.Files {
				sources = append(sources, source{product: in.Product, path: f})
			}
		}
	}

	catalog, err := collect(ctx, sources)
	if err != nil {
		return err
	}
	return render.Render(cmd.OutOrStdout(), format, catalog.List())
}

// collect extracts every source in order into one catalog. Malformed files
// found by the locator are skipped with a warning; explicit ones fail.
func collect(ctx context.Context, sources []source) (*project.Catalog, error) {
	log := logging.FromContext(ctx)
	extractor := project.NewExtractor(
		project.WithLogger(log.Named("extract")),
		project.WithWorkers(cfg.Extract.Workers),
	)

	catalog := project.NewCatalog()
	for _, src := range sources {
		sctx := ctx
		if src.product != "" {
			sctx = logging.WithProduct(ctx, src.product)
		}

		projects, err := extractor.Extract(sctx, src.path)
		if err != nil {
			if errors.Is(err, project.ErrParse) && !src.explicit {
				log.Warn(logging.WithSourceFile(sctx, src.path), "skipping malformed recent projects file", zap.Error(err))
				continue
			}
			return nil, err
		}

		added := catalog.Add(projects...)
		log.Debug(logging.WithSourceFile(sctx, src.path), "merged recent projects",
			zap.Int("extracted", len(projects)),
			zap.Int("added", added),
		)
	}
	return catalog, nil
}

func selectedFormat(cmd *cobra.Command) (render.Format, error) {
	name := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = outputFormat
	}
	return render.ParseFormat(name)
}
