package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"journalplot/internal/httpapi"
	"journalplot/internal/render"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		corsEnabled bool
		corsOrigins []string
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve figures over HTTP for live preview",
		Example: "  journalplot serve --addr :8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			if addr == "" {
				addr = os.Getenv("JOURNALPLOT_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			httpapi.SetLogger(a.log)
			httpapi.SetCORSOptions(corsEnabled, corsOrigins,
				[]string{"GET", "OPTIONS"}, []string{"Accept", "X-Log-Level"})

			mux := httpapi.NewMux(render.NewService())
			srv := &http.Server{Addr: addr, Handler: mux}

			errc := make(chan error, 1)
			go func() {
				a.log.Info().Str("addr", addr).Msg("preview server listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errc <- err
				}
			}()

			// Graceful shutdown (Ctrl+C / SIGTERM)
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errc:
				return err
			case <-stop:
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				a.log.Error().Err(err).Msg("graceful shutdown")
				return err
			}
			a.log.Info().Msg("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (defaults JOURNALPLOT_ADDR or :8080)")
	cmd.Flags().BoolVar(&corsEnabled, "cors", false, "Enable CORS for browser-based preview tools")
	cmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", []string{"*"}, "Allowed CORS origins")
	return cmd
}
