package cli

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/pkg/cli/internal/flags"
	"github.com/getmockd/shapemock/pkg/server"
)

// DefaultPort is the port serve listens on when --port is not given.
const DefaultPort = 4380

func newServeCmd(g *globalOptions) *cobra.Command {
	var (
		file   string
		routes flags.StringSlice
		host   string
		port   int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated values over HTTP",
		Long: `Serve generated values over HTTP.

Each --route binds "[METHOD ]/path=schema[:status]" to a schema. Requests
may add ?excludeOptional=true and ?delay=250ms. Send "Accept:
application/yaml" for YAML responses.

Built-in endpoints:
  GET /__schemas          summaries of every loaded schema
  GET /__generate/{name}  one value for any loaded schema

Examples:
  shapemock serve -f schemas.yaml --route "GET /users=user"
  shapemock serve -f schemas.yaml --route "POST /users=user:201" --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(file)
			if err != nil {
				return err
			}

			parsed := make([]server.Route, 0, len(routes))
			for _, spec := range routes {
				r, err := server.ParseRoute(spec)
				if err != nil {
					return err
				}
				parsed = append(parsed, r)
			}

			srv, err := server.New(set, parsed, server.WithLogger(g.logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = srv.Run(ctx, net.JoinHostPort(host, strconv.Itoa(port)))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "Schema document path or glob pattern")
	f.Var(&routes, "route", `Route as "[METHOD ]/path=schema[:status]" (repeatable)`)
	f.StringVar(&host, "host", "localhost", "Interface to listen on")
	f.IntVarP(&port, "port", "p", DefaultPort, "Port to listen on")
	return cmd
}
