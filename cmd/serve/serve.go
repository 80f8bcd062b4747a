package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/newton-fractal/pkg/server"
)

const (
	flagAddr      = "addr"
	flagMaxPixels = "max-pixels"
	flagStatic    = "static"
	flagWorkers   = "workers"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Newton fractal renders over HTTP and WebSocket",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().String(flagAddr, ":3003", "listen address")
	cmd.Flags().Int(flagMaxPixels, server.DefaultMaxPixels, "largest width*height accepted per render")
	cmd.Flags().String(flagStatic, "", "directory of front-end files served at /")
	cmd.Flags().Int(flagWorkers, 0, "goroutines per render, 0 for one per CPU")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	addr, _ := flags.GetString(flagAddr)
	maxPixels, _ := flags.GetInt(flagMaxPixels)
	static, _ := flags.GetString(flagStatic)
	workers, _ := flags.GetInt(flagWorkers)

	srv := &http.Server{
		Addr: addr,
		Handler: server.New(server.Config{
			MaxPixels: maxPixels,
			Workers:   workers,
			Static:    static,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}

	err = <-errs
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
