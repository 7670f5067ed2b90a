package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raylayout/pkg/observability"
	"github.com/matzehuels/raylayout/pkg/server"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render pipeline over HTTP",
		Long: `Serve the layout and render pipeline over HTTP.

  GET  /healthz
  POST /v1/layout?format=toml|json
  POST /v1/render?format=svg|png|json|dot|nodelink

Set RAYLAYOUT_REDIS_ADDR to share the cache between several servers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, maxBody)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body in bytes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, maxBody int64) error {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return err
	}
	runner := server.NewRunner(cache, c.Logger)
	defer runner.Close()

	// Responses are always logged; --verbose adds the pipeline stages.
	observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))

	srv := server.New(runner, c.Logger, server.WithMaxBodyBytes(maxBody))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	c.Logger.Info("server stopped")
	return nil
}
