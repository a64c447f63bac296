package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kaidian/internal/api"
	"kaidian/internal/auth"
	"kaidian/internal/config"
	"kaidian/internal/data"
	"kaidian/internal/db"
	"kaidian/internal/game"
	"kaidian/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config.LoadDotenv()
	cfg, err := config.LoadAPIFromEnv()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	conn, err := db.Open(ctx, cfg.DBDialect, cfg.SQLitePath, cfg.PostgresDSN)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	repo, err := store.New(ctx, cfg.DBDialect, conn)
	if err != nil {
		logger.Error("store init failed", "err", err)
		os.Exit(1)
	}

	gameSvc := game.NewService(repo, data.Default(), logger)
	server := api.New(cfg, logger, auth.NewVerifier(cfg.AuthTokens), gameSvc)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("kaidian api listening", "addr", cfg.Addr, "dialect", cfg.DBDialect)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
