package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"movieguess"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Catalog Catalog
	Groq    Groq
	Redis   Redis
}

// Catalog points at the two raw movie sources and tunes the one-time pool
// build at startup.
type Catalog struct {
	TMDBBaseURL     string        `env:"TMDB_ROWS_BASE_URL" envDefault:"https://datasets-server.huggingface.co"`
	BollywoodCSVURL string        `env:"BOLLYWOOD_CSV_URL"`
	FetchTimeout    time.Duration `env:"CATALOG_FETCH_TIMEOUT" envDefault:"60s"`
	PerSource       int           `env:"CATALOG_PER_SOURCE" envDefault:"150"`
	SampleSeed      int64         `env:"CATALOG_SAMPLE_SEED" envDefault:"24"`
}

// Groq configures the external completion capability. The API key is the
// one secret this service needs; startup fails without it.
type Groq struct {
	APIKey          string        `env:"GROQ_API_KEY,notEmpty"`
	BaseURL         string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model           string        `env:"GROQ_MODEL" envDefault:"gemma2-9b-it"`
	HTTPTimeout     time.Duration `env:"GROQ_HTTP_TIMEOUT" envDefault:"30s"`
	AnswerMaxTokens int           `env:"GROQ_ANSWER_MAX_TOKENS" envDefault:"50"`
	HintMaxTokens   int           `env:"GROQ_HINT_MAX_TOKENS" envDefault:"50"`
	HintTemperature float64       `env:"GROQ_HINT_TEMPERATURE" envDefault:"0.7"`
}

// Redis selects the Redis-backed session store when Addr is set; the
// in-memory store serves otherwise.
type Redis struct {
	Addr       string        `env:"REDIS_ADDR"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize   int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"0"` // zero keeps bindings forever
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
