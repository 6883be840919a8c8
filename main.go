package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terabox-dl-bot/internal/fetcher"
	"terabox-dl-bot/internal/health"
	"terabox-dl-bot/internal/janitor"
	"terabox-dl-bot/internal/pkg/config"
	"terabox-dl-bot/internal/telegram"
	"terabox-dl-bot/internal/user"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := os.OpenFile(cfg.Log.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.MultiWriter(os.Stdout, logFile), nil)))

	pool, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("DB Connected Successfully")

	if err := os.MkdirAll(cfg.Fetcher.VideosDir, 0755); err != nil {
		log.Fatal(err)
	}

	resolveClient := &http.Client{Timeout: cfg.Fetcher.ResolveTimeout}
	// the stream client times out waiting for headers only, a transfer may
	// legitimately run far longer than any total timeout
	streamClient := &http.Client{Transport: &http.Transport{ResponseHeaderTimeout: cfg.Fetcher.StreamTimeout}}

	fetcherService := fetcher.NewDefaultService(&cfg.Fetcher, resolveClient, streamClient, nil)

	userRepo := user.NewDefaultRepo(pool)
	userService := user.NewDefaultService(userRepo)

	bot, err := telegram.NewBot(userService, fetcherService, &cfg.Telegram, cfg.Fetcher.VideosDir)
	if err != nil {
		log.Fatal(err)
	}
	bot.Start(ctx)

	janitorService := janitor.NewDefaultService(&cfg.Janitor, cfg.Fetcher.VideosDir)
	janitorService.Start(ctx)

	healthServer := health.New(cfg.Health.Addr)
	healthServer.Start()

	<-ctx.Done()
	slog.Info("Shutting down...")
	shutdownCtx, shutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer shutdown()

	if err := healthServer.Stop(shutdownCtx); err != nil {
		slog.Error(err.Error())
	}
	if err := janitorService.Stop(shutdownCtx); err != nil {
		log.Fatal(err)
	}
	pool.Close()
}
