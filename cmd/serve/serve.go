// Package serve implements the HTTP server command.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/datastore"
	"github.com/voyago/voyago/internal/errors"
	"github.com/voyago/voyago/internal/httpcontroller"
	"github.com/voyago/voyago/internal/logging"
	"github.com/voyago/voyago/internal/pipeline"
)

// Command returns the serve subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(settings)
		},
	}

	cmd.Flags().StringVar(&settings.Server.Port, "port", settings.Server.Port, "HTTP listen port")
	cmd.Flags().StringVar(&settings.Server.Host, "host", settings.Server.Host, "HTTP listen host")

	return cmd
}

func run(settings *conf.Settings) error {
	log := logging.ForService("serve")

	ds, err := datastore.New(settings)
	if err != nil {
		return err
	}
	if err := ds.Open(); err != nil {
		return err
	}
	defer func() {
		if err := ds.Close(); err != nil {
			log.Error("Failed to close datastore", "error", err)
		}
	}()

	p, err := pipeline.Build(settings)
	if err != nil {
		return err
	}

	server := httpcontroller.New(settings, ds, p.Generator, p.Enricher, p.Registry)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("HTTP server failed: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
