package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaelux/assistant/pkg/assistant"
	"github.com/kaelux/assistant/pkg/config"
	"github.com/kaelux/assistant/pkg/fetch"
	"github.com/kaelux/assistant/pkg/gitdocs"
	"github.com/kaelux/assistant/pkg/model"
	"github.com/kaelux/assistant/pkg/search"
	"github.com/kaelux/assistant/pkg/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Fatal().Err(err).Msg("Failed to load config")
	}

	log := newLogger(cfg.Logging)
	ctx := context.Background()

	// A missing model key is reported per request as a configuration
	// error; the server still starts so the failure is observable.
	var generator assistant.Generator
	modelClient, err := model.NewClient(ctx, &cfg.Model, log)
	if err != nil {
		log.Warn().Err(err).Msg("Model provider unavailable, chat requests will fail")
	} else {
		generator = modelClient
	}

	opts := []assistant.Option{
		assistant.WithDocsClient(gitdocs.NewClient(&cfg.Docs, log)),
		assistant.WithPageFetcher(fetch.NewRouter(&cfg.Fetch, log)),
	}
	if cfg.Search.Configured() {
		opts = append(opts, assistant.WithSearcher(search.NewService(&cfg.Search)))
	} else {
		log.Info().Msg("No search provider configured, search branch disabled")
	}

	orchestrator := assistant.New(generator, log, opts...)
	srv := server.New(&cfg.Server, orchestrator, nil, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Format == "json" {
		log = zerolog.New(os.Stdout)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.StampMilli})
	}
	return log.Level(level).With().Timestamp().Logger()
}
