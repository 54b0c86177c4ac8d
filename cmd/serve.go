package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/desertthunder/songbook/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the development catalog API until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := r.config.Server.Host
	if cmd.IsSet("host") {
		host = cmd.String("host")
	}
	port := r.config.Server.Port
	if cmd.IsSet("port") {
		port = cmd.Int("port")
	}
	seedPath := r.config.Server.SeedPath
	if cmd.IsSet("seed") {
		seedPath = cmd.String("seed")
	}

	var seed []byte
	if seedPath != "" {
		data, err := os.ReadFile(seedPath)
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
		seed = data
	}

	store, err := server.NewStore(seed)
	if err != nil {
		return fmt.Errorf("failed to build catalog store: %w", err)
	}

	router := server.NewCatalogRouter(store, r.logger)

	addr := fmt.Sprintf("%s:%d", host, port)
	r.logger.Info("serving catalog API", "addr", addr, "collections", store.Collections())

	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
