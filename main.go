package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/akj2003/GamingHub/internal/cleanup"
	"github.com/akj2003/GamingHub/internal/config"
	"github.com/akj2003/GamingHub/internal/game/hangman"
	"github.com/akj2003/GamingHub/internal/httpserver"
	"github.com/akj2003/GamingHub/internal/hub"
	"github.com/akj2003/GamingHub/internal/store"
	"github.com/akj2003/GamingHub/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	cleanup.NewWorker(mem, cfg.CleanupInterval, cfg.SessionIdleTTL).Start(ctx)

	reg := hub.Registry{Words: hangman.Source{Salt: cfg.DailySalt}}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpserver.New(cfg, mem, reg).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Int("words", words.Stats()).Msg("starting gaming hub")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}
