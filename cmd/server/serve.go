package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/handlers"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/repository"
	"github.com/yukikurage/collabhub/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}

		// Set Gin mode
		gin.SetMode(cfg.GinMode)

		if err := connect(); err != nil {
			return err
		}

		store, err := middleware.NewSessionStore(cfg)
		if err != nil {
			return err
		}

		svc := services.New(repository.NewStore(database.GetDB()), services.Options{
			EnforceRequestReceiver: cfg.EnforceRequestReceiver,
		})

		router, err := handlers.NewRouter(cfg, svc, store)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", cfg.HTTPAddr).Msg("Server starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
