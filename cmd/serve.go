package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ClinicAdmin/config"
	"ClinicAdmin/database"
	"ClinicAdmin/locks"
	"ClinicAdmin/logger"
	"ClinicAdmin/metrics"
	"ClinicAdmin/routes"
	"ClinicAdmin/tracer"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(shutdownTimeout)
		},
	}
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Maximum time to wait for in-flight requests on shutdown")
	return cmd
}

func serve(shutdownTimeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	tp, err := tracer.Init(ctx, tracer.Config{
		Enabled:     cfg.TracingEnabled,
		ServiceName: "clinic",
		Endpoint:    cfg.OTLPEndpoint,
		SampleRate:  cfg.TracingSampleRate,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.InitDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("database close failed", zap.Error(err))
		}
	}()

	var locker locks.Locker = locks.NewMemoryLocker()
	if cfg.RedisAddress != "" {
		var client *redis.Client
		client, err = database.NewRedisClient(ctx, database.DefaultRedisConfig(cfg.RedisAddress, cfg.RedisPoolSize), log)
		if err != nil {
			return err
		}
		defer client.Close()
		locker = locks.NewRedisLocker(client)
	} else {
		log.Info("REDIS_URL not set, using in-process locks")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	handler, err := routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		DB:       db,
		Locks:    locks.NewManager(locker, log),
		Metrics:  metrics.NewCollector("clinic"),
		Log:      log,
		Location: loc,
		Now:      time.Now,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           cfg.Address(),
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	serverErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		wg.Wait()
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	wg.Wait()
	log.Info("server exited gracefully")
	return nil
}
