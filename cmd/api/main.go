package main

import (
	"context"
	"fmt"

	"github.com/abhishek622/interviewPrep/internal/cache"
	"github.com/abhishek622/interviewPrep/internal/config"
	"github.com/abhishek622/interviewPrep/internal/gemini"
	"github.com/abhishek622/interviewPrep/internal/handler"
	"github.com/abhishek622/interviewPrep/internal/interview"
	"github.com/abhishek622/interviewPrep/internal/llm"
	"github.com/abhishek622/interviewPrep/internal/logger"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/internal/ratelimit"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Limiter ratelimit.Limiter
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, %s", cfg)

	completer, err := newModel(ctx, cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	if completer == nil {
		log.Warn("no model API key configured, interview endpoints will answer with a configuration error",
			zap.String("provider", cfg.LLM.Provider))
	}

	service := interview.NewService(completer, log, interview.WithTemperature(cfg.LLM.Temperature))

	limiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		sugar.Fatal(err)
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		Limiter: limiter,
		Handler: &handler.Handler{
			Logger:   log,
			Service:  service,
			Env:      cfg.Env,
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// newModel returns nil when no credential is configured so that requests
// fail with a configuration error instead of the process refusing to start.
func newModel(ctx context.Context, cfg *config.Config) (llm.Completer, error) {
	key := cfg.ModelAPIKey()
	if key == "" {
		return nil, nil
	}

	switch cfg.LLM.Provider {
	case llm.ProviderOpenAI:
		return openai.NewClient(key, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.Timeout), nil
	case llm.ProviderGroq:
		baseURL := cfg.LLM.BaseURL
		if baseURL == "" {
			baseURL = openai.GroqBaseURL
		}
		return openai.NewClient(key, cfg.LLM.Model, baseURL, cfg.LLM.Timeout), nil
	case llm.ProviderGemini:
		c, err := gemini.NewClient(ctx, key, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.Timeout)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
	}
}

func newLimiter(ctx context.Context, cfg *config.Config, log *zap.Logger) (ratelimit.Limiter, error) {
	if !cfg.Limiter.Enabled {
		return nil, nil
	}
	if cfg.Redis.Addr == "" {
		return ratelimit.NewMemory(cfg.Limiter.RPS, cfg.Limiter.Burst), nil
	}

	rdb := cache.NewRedisClient(cfg.Redis)
	if err := cache.Ping(ctx, rdb); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	limit := ratelimit.WindowLimit(cfg.Limiter.RPS, cfg.Limiter.Burst, rateWindow)
	log.Info("rate limiter backed by redis", zap.String("addr", cfg.Redis.Addr), zap.Int("per_minute", limit))
	return ratelimit.NewRedis(rdb, limit, rateWindow), nil
}
