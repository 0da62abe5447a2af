package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/graphrag/internal/api"
	"github.com/persistorai/graphrag/internal/config"
	"github.com/persistorai/graphrag/internal/dataset"
	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph over HTTP (configured via GRAPHRAG_* env)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flagTriples != "" {
				cfg.TriplesFile = flagTriples
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, newLogger(cfg))
		},
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(cfg.Level())
	return log
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	triples, err := dataset.Resolve(cfg.TriplesFile)
	if err != nil {
		return fmt.Errorf("loading triples: %w", err)
	}

	g := graph.Build(triples)
	svc := service.NewGraphService(g, log, service.Options{
		MaxDepth:     cfg.MaxDepth,
		BatchWorkers: cfg.BatchWorkers,
	})

	if cfg.Level() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(ctx, &api.RouterDeps{
			Log:         log,
			Graph:       svc,
			CORSOrigins: cfg.CORSOrigins,
			Version:     version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":     cfg.Addr(),
			"entities": g.Len(),
			"edges":    g.EdgeCount(),
		}).Info("graphrag listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
