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

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/postboard/config"
	"github.com/d60-Lab/postboard/internal/api/handler"
	"github.com/d60-Lab/postboard/internal/api/router"
	"github.com/d60-Lab/postboard/internal/idgen"
	"github.com/d60-Lab/postboard/internal/repository"
	"github.com/d60-Lab/postboard/internal/service"
	"github.com/d60-Lab/postboard/internal/view"
	"github.com/d60-Lab/postboard/pkg/database"
	"github.com/d60-Lab/postboard/pkg/logger"
	"github.com/d60-Lab/postboard/pkg/tracing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "postboard:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	postRepo, closeStore, err := newPostRepository(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	newID, err := idgen.ByName(cfg.Store.IDFormat)
	if err != nil {
		return err
	}
	postService := service.NewPostService(postRepo, newID)
	if cfg.Store.Seed {
		if err := postService.Seed(ctx, service.DefaultSeeds); err != nil {
			return err
		}
	}

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		return err
	}
	h := handler.NewHandler(postService, renderer, view.Public(), cfg.Server.PublicCacheSeconds)
	engine := router.Setup(cfg, h, renderer)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Listening on port %d", cfg.Server.Port),
			zap.String("store", cfg.Store.Driver),
			zap.String("id_format", cfg.Store.IDFormat),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newPostRepository 按 store.driver 选择实现，两种实现都不跨进程保留数据
func newPostRepository(cfg *config.Config) (repository.PostRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := database.InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewGormPostRepository(db), func() {
			if err := database.Close(db); err != nil {
				logger.Warn("close database", zap.Error(err))
			}
		}, nil
	default:
		return repository.NewMemoryPostRepository(), func() {}, nil
	}
}
