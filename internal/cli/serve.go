package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/evoviz/evoviz/internal/api"
	"github.com/evoviz/evoviz/pkg/store"
)

// serveCommand creates the serve command running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes the layout engine over HTTP for the frontend:

  POST /api/layout/strategy               compute a strategy layout
  POST /api/layout/lineage                compute a lineage layout
  GET  /api/runs/{runID}/layout/{kind}    fetch a persisted layout
  GET  /healthz                           liveness probe

Computed layouts are memoized through the configured cache. When a MongoDB
URI is configured, layouts computed with a run_id query parameter are
persisted and served back by the runs endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = c.Config.Listen
			}
			return c.runServe(cmd.Context(), listen, noCache)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "bind address (default from config, else :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout memoization")

	return cmd
}

// runServe builds the server from config and runs it until ctx is
// cancelled.
func (c *CLI) runServe(ctx context.Context, listen string, noCache bool) error {
	runner := c.newRunner(noCache)
	defer runner.Close()

	var st store.Store
	if uri := c.Config.Mongo.URI; uri != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		ms, err := store.NewMongoStore(connectCtx, uri, c.Config.Mongo.Database)
		cancel()
		if err != nil {
			return fmt.Errorf("connect layout store: %w", err)
		}
		st = ms
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = ms.Close(closeCtx)
		}()
		c.Logger.Info("layout persistence enabled")
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      api.New(runner, st, c.Logger).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("server stopped")
		return nil
	}
}
