package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/engine"
	"github.com/jonathan/job-matcher/internal/jobsearch"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/matching"
)

// loadConfig loads the config file, then applies env fallbacks and defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine wires the stores, providers and ranker. The returned
// cleanup closes the database pool and the embedding client.
func buildEngine(ctx context.Context, cfg *config.Config, log *zap.Logger) (*engine.Engine, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("database URL is required (config 'database_url' or DATABASE_URL)")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("embedding API key is required (config 'gemini_api_key' or GEMINI_API_KEY)")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	provider, err := embedding.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		database.Close()
		return nil, nil, err
	}

	var searcher engine.Searcher
	if cfg.SearchBaseURL != "" && cfg.SearchAPIKey != "" {
		searcher = jobsearch.New(cfg.SearchBaseURL, cfg.SearchAPIKey, cfg.SearchAPIHost, log)
	}

	ranker := matching.NewRanker(provider, log)
	eng := engine.New(database, database, searcher, ranker, log)

	cleanup := func() {
		_ = provider.Close()
		database.Close()
	}
	return eng, cleanup, nil
}

// buildLogger constructs the zap logger from config switches.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}
