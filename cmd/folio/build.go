package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newSite() *folio.Site {
	return folio.New(siteCfg,
		folio.WithViews(views.Default()),
		folio.WithLogger(slog.Default()),
	)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the static site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := newSite()
			report, err := site.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %d posts (%d files) into %s in %s\n",
				report.Posts, report.Files, site.Config.OutputDir, report.Duration.Round(time.Millisecond))
			return nil
		},
	}
}
