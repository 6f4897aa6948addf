package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Neha3-ai/final-ip-project/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr, cors string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route planner over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			opts := []server.Option{server.WithLogger(a.logger)}
			origins := a.cfg.Server.CORSOrigins
			if cors != "" {
				origins = strings.Split(cors, ",")
			}
			if len(origins) > 0 {
				opts = append(opts, server.WithCORSOrigins(origins...))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(a.planner, opts...).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config server.addr)")
	cmd.Flags().StringVar(&cors, "cors", "", "comma-separated allowed origins (overrides config server.cors_origins)")

	return cmd
}
