package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rahulkv/movieguess/internal/catalog"
	"github.com/rahulkv/movieguess/internal/config"
	"github.com/rahulkv/movieguess/internal/game"
	"github.com/rahulkv/movieguess/internal/llm"
	"github.com/rahulkv/movieguess/internal/logging"
	"github.com/rahulkv/movieguess/internal/server"
	"github.com/rahulkv/movieguess/internal/session"
)

// Application aggregates shared infrastructure (candidate pool, session
// store, completion client, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client // nil unless the redis session store is enabled
	http  *http.Server
}

// New bootstraps config, logger, the one-time catalog build, the session
// store and the HTTP server. A failed catalog build aborts startup: the
// game cannot run without its dataset.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	httpClient := &http.Client{Timeout: cfg.Catalog.FetchTimeout}
	builder := catalog.NewBuilder(
		catalog.NewTMDBClient(cfg.Catalog.TMDBBaseURL, httpClient),
		catalog.NewBollywoodClient(cfg.Catalog.BollywoodCSVURL, httpClient),
		catalog.BuildOptions{
			PerSource:  cfg.Catalog.PerSource,
			SampleSeed: cfg.Catalog.SampleSeed,
		},
		logger,
	)
	pool, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build candidate pool: %w", err)
	}

	var (
		store       session.Store
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		store = session.NewRedisStore(redisClient, pool, cfg.Redis.SessionTTL, logger)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store enabled")
	} else {
		store = session.NewMemoryStore(pool)
		logger.Info().Msg("in-memory session store enabled")
	}

	completer := llm.NewClient(llm.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.Model,
		Timeout: cfg.Groq.HTTPTimeout,
	}, logger)

	gameSvc := game.NewService(store, completer, game.ServiceOptions{
		Answer: llm.Options{
			MaxTokens: cfg.Groq.AnswerMaxTokens,
			TopP:      1,
		},
		Hint: llm.Options{
			Temperature: float32(cfg.Groq.HintTemperature),
			MaxTokens:   cfg.Groq.HintMaxTokens,
			TopP:        1,
		},
	}, logger)

	handlers := server.NewGameHandlers(gameSvc, logger)
	apiServer := server.NewHTTPServer(cfg, logger, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
