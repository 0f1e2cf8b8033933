// =============================================================================
// Ventas POS - Serve Command
// =============================================================================
//
// COMMAND USAGE:
//   pos serve [--addr :8080]
//
// Serves the stock and billing views over HTTP until SIGINT or SIGTERM,
// then shuts down gracefully.
//
// =============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ginjaninja78/ventas-pos/internal/httpapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// listenAddr overrides the configured listen address when set.
var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stock and billing views over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			addr := s.cfg.ListenAddr
			if listenAddr != "" {
				addr = listenAddr
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(s.app, s.log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				s.log.Info("server started", zap.String("addr", addr))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
				s.log.Info("shutting down server")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			s.log.Info("server stopped")
			return nil
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides listen_addr)")
	rootCmd.AddCommand(serveCmd)
}
