package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio"
)

func newServeCmd() *cobra.Command {
	var (
		port  int
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve the output directory locally",
		Long: `serve performs a full build, then serves the output directory over HTTP.
With --watch, any change under the content or static directory triggers
another full build.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			site := newSite()
			if _, err := site.Build(ctx); err != nil {
				return fmt.Errorf("initial build: %w", err)
			}

			addr := site.Config.Addr
			if port > 0 {
				addr = fmt.Sprintf(":%d", port)
			}
			preview := folio.NewPreview(site.Config)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				slog.Info("serving site", "dir", site.Config.OutputDir, "addr", addr)
				return preview.Start(gctx, addr)
			})
			if watch {
				g.Go(func() error {
					return site.Watch(gctx, folio.DefaultDebounce, nil)
				})
			}
			err := g.Wait()
			if err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to serve on (overrides addr)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when content or static files change")
	return cmd
}
