package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/uuice/lumos-comments/internal/auth"
	commenthttp "github.com/uuice/lumos-comments/internal/comment/handler/http"
	"github.com/uuice/lumos-comments/internal/comment/service"
	"github.com/uuice/lumos-comments/internal/comment/storage"
	"github.com/uuice/lumos-comments/internal/comment/storage/inmemory"
	"github.com/uuice/lumos-comments/internal/comment/storage/postgres"
	"github.com/uuice/lumos-comments/internal/config"
)

func main() {
	appConfig := config.Read()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer zap.L().Sync()

	zap.L().Info("app starting...")

	var repo storage.Repository
	if appConfig.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := postgres.Open(ctx, appConfig.DatabaseURL)
		cancel()
		if err != nil {
			zap.L().Fatal("connect postgres", zap.Error(err))
		}
		defer pg.Close()
		repo = pg
		zap.L().Info("using postgres storage")
	} else {
		repo = inmemory.New()
		zap.L().Warn("DATABASE_URL not set, using in-memory storage")
	}

	var sessions auth.Sessions
	if appConfig.RedisURL != "" {
		ttl := time.Duration(appConfig.SessionTTLHours) * time.Hour
		store, err := auth.NewRedisStore(appConfig.RedisURL, ttl)
		if err != nil {
			zap.L().Fatal("connect redis", zap.Error(err))
		}
		defer store.Close()
		sessions = store
		zap.L().Info("using redis admin sessions")
	} else {
		sessions = auth.NewStatic(appConfig.AdminToken)
		zap.L().Warn("REDIS_URL not set, using static admin token verification")
	}

	if appConfig.AdminToken == "" {
		zap.L().Warn("ADMIN_TOKEN not set, moderation endpoints will refuse all callers")
	}

	svc := service.New(repo)
	h := commenthttp.New(svc, sessions, appConfig.AdminToken)

	srv := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      h.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	go func() {
		zap.L().Info("server listening", zap.String("port", appConfig.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("error during server shutdown", zap.Error(err))
	}

	zap.L().Info("server gracefully stopped")
}
