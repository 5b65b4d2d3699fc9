// Package server boots every dependency and runs the HTTP server, plus the
// optional gRPC health server, until SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/shashiranjanraj/backoffice/app/listeners"
	"github.com/shashiranjanraj/backoffice/app/routes"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/internal/kernel"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	grpcserver "github.com/shashiranjanraj/backoffice/pkg/grpc"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/storage"
	"github.com/shashiranjanraj/backoffice/pkg/workerpool"
	"github.com/shashiranjanraj/backoffice/pkg/ws"
)

const shutdownTimeout = 15 * time.Second

// Start blocks until the process is signalled or a listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if uri := config.Get("LOG_MONGO_URI", ""); uri != "" {
		h, err := logger.NewMongoHandler(uri,
			config.Get("LOG_MONGO_DB", "backoffice"),
			config.Get("LOG_MONGO_COLLECTION", "logs"))
		if err != nil {
			logger.Warn("logger: mongo sink disabled", "error", err.Error())
		} else {
			logger.Tee(h)
			defer h.Close()
		}
	}

	db, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	signer, err := auth.NewSigner(config.JWTSecret())
	if err != nil {
		return err
	}

	disk, err := storage.Open(ctx)
	if err != nil {
		logger.Warn("storage: uploads disabled", "error", err.Error())
		disk = nil
	}

	store := cache.Open(ctx)
	if c, ok := store.(interface{ Close() error }); ok {
		defer c.Close() //nolint:errcheck
	}

	pool := workerpool.New(config.Int("EVENT_WORKERS", 8))
	defer pool.Shutdown()
	bus := event.NewBus(event.WithPool(pool))
	hub := ws.NewHub()
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)
	listeners.RegisterOrderBroadcast(bus, hub)

	deps := routes.Deps{
		DB:       db,
		Signer:   signer,
		Cache:    store,
		CacheTTL: time.Duration(config.Int("CACHE_TTL_SECONDS", 300)) * time.Second,
		Events:   bus,
		Disk:     disk,
		Hub:      http.HandlerFunc(hub.Serve),
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Build(deps, kernel.Options{}).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errs := make(chan error, 2)
	go func() {
		logger.Info("http: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("http: %w", err)
		}
	}()

	var grpcSrv *grpc.Server
	if port := config.GRPCPort(); port != "" {
		lis, err := grpcserver.Listen(port)
		if err != nil {
			return err
		}
		grpcSrv = grpcserver.NewServer(func(ctx context.Context) error { return database.Ping(ctx, db) })
		go func() {
			logger.Info("grpc: listening", "addr", lis.Addr().String())
			if err := grpcSrv.Serve(lis); err != nil {
				errs <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errs:
		logger.Error("server failed", "error", err.Error())
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	grpcserver.Stop(shutdownCtx, grpcSrv)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http: shutdown: %w", err)
	}
	bus.Wait()
	pool.Shutdown()
	stopHub()
	return nil
}
