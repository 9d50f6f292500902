package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Veraticus/pennywise/internal/config"
	"github.com/Veraticus/pennywise/internal/insight"
	"github.com/Veraticus/pennywise/internal/storage"
)

// initStorage opens the store with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// createInsightRequester builds the insight requester from configuration.
// Shared by the insight command and anything else that wants the advisor.
func createInsightRequester() (*insight.Requester, error) {
	provider := viper.GetString("insight.provider")
	if provider == "" {
		provider = "gemini"
	}

	cfg := insight.Config{
		Provider:    provider,
		Model:       viper.GetString("insight.model"),
		Temperature: viper.GetFloat64("insight.temperature"),
		MaxTokens:   viper.GetInt("insight.max_tokens"),
	}

	// Check viper first, then the provider's conventional environment
	// variable.
	switch provider {
	case "gemini":
		cfg.APIKey = viper.GetString("insight.gemini_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini API key not found in config or GEMINI_API_KEY environment variable")
		}
	case "openai":
		cfg.APIKey = viper.GetString("insight.openai_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
	case "anthropic":
		cfg.APIKey = viper.GetString("insight.anthropic_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
	default:
		return nil, fmt.Errorf("unsupported insight provider: %s", provider)
	}

	client, err := insight.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight client: %w", err)
	}

	return insight.NewRequester(client, viper.GetDuration("insight.timeout")), nil
}
