package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/config"
	"github.com/katalvlaran/lwwgraph/httpsync"
	"github.com/katalvlaran/lwwgraph/logging"
	"github.com/katalvlaran/lwwgraph/replica"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		configPath string
		statePath  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a replica node with an HTTP API and peer sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, statePath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	cmd.Flags().StringVar(&statePath, "state", "", "snapshot file loaded at start and written on shutdown (.json or .yaml)")

	return cmd
}

// serve runs the node until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config, statePath string) error {
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	clk, err := clock.Parse(cfg.Replica.Clock)
	if err != nil {
		return err
	}
	r := replica.New(
		replica.WithID(cfg.Replica.ID),
		replica.WithDirected(cfg.Replica.Directed),
		replica.WithClock(clk),
		replica.WithLogger(log),
	)
	defer r.Close()

	if statePath != "" {
		if err = loadState(r, statePath); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      httpsync.NewServer(r, log).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	syncer := httpsync.NewSyncer(r, cfg.Sync, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", srv.Addr, "directed", r.Directed(), "clock", cfg.Replica.Clock)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	})
	g.Go(func() error { return syncer.Run(gCtx) })
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if statePath != "" {
		if werr := snapshot.WriteFile(statePath, r.Snapshot()); werr != nil {
			err = errors.Join(err, werr)
		} else {
			log.Info("state saved", "path", statePath)
		}
	}

	return err
}

// loadState merges the snapshot at path into r. A missing file is not an error.
func loadState(r *replica.Replica, path string) error {
	st, err := snapshot.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	return r.MergeState(st)
}
