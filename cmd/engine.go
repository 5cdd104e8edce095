package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/ai"
	"github.com/spigell/cv-scorer/internal/ai/anthropic"
	"github.com/spigell/cv-scorer/internal/ai/gemini"
	"github.com/spigell/cv-scorer/internal/ai/openai"
	"github.com/spigell/cv-scorer/internal/analyzer"
	"github.com/spigell/cv-scorer/internal/cache"
	"github.com/spigell/cv-scorer/internal/consensus"
	"github.com/spigell/cv-scorer/internal/history"
	"github.com/spigell/cv-scorer/internal/jobreq"
	"github.com/spigell/cv-scorer/internal/profile"
	"github.com/spigell/cv-scorer/internal/reference"
	"github.com/spigell/cv-scorer/internal/secrets"
)

var errNotConfigured = errors.New("not configured")

// engine bundles the analyzer with the resources that need closing.
type engine struct {
	ref      *reference.Data
	analyzer *analyzer.Analyzer
	history  *history.Store
}

func (e *engine) Close() error {
	if e.history == nil {
		return nil
	}
	return e.history.Close()
}

func newEngine(ctx context.Context, config *Config, debug bool, logger *zap.Logger) (*engine, error) {
	if config == nil || config.Engine == nil {
		return nil, errors.New("engine configuration is required")
	}

	ref, err := reference.Load(config.Engine.ReferenceFile)
	if err != nil {
		return nil, err
	}

	builderOpts := profile.DefaultOptions()
	builderOpts.FieldThreshold = config.Engine.FieldThreshold
	builderOpts.MaxSkills = config.Engine.MaxSkills

	deps := analyzer.Deps{
		Reference: ref,
		Builder:   profile.NewBuilder(ref, builderOpts),
		Parser:    jobreq.NewParser(ref, jobreq.Options{IndustryThreshold: config.Engine.IndustryThreshold}),
		Logger:    logger,
	}

	if config.Cache != nil {
		deps.Cache = cache.New[*analyzer.Report](config.Cache.TTL)
	}

	if config.AI != nil && config.AI.Enabled {
		backends := newBackends(ctx, config.AI, logger)
		if len(backends) == 0 {
			logger.Warn("ai is enabled but no backend is configured, using algorithmic scoring only")
		}
		deps.Enhancer = consensus.New(backends, consensus.Options{
			Timeout:      config.AI.Timeout,
			BlendRatio:   config.AI.BlendRatio,
			MaxLogLength: config.AI.MaxLogLength,
		}, logger)
	}

	e := &engine{ref: ref}
	if config.History != nil && config.History.Enabled {
		store, err := history.Open(config.History.Driver, config.History.DSN, debug, logger)
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		e.history = store
		deps.Recorder = store
	}

	e.analyzer = analyzer.New(deps)
	return e, nil
}

// newBackends builds every provider that has a key. Misconfigured providers
// are skipped with a warning.
func newBackends(ctx context.Context, cfg *AIConfig, logger *zap.Logger) []ai.Backend {
	var backends []ai.Backend

	add := func(name string, b ai.Backend, err error) {
		switch {
		case errors.Is(err, errNotConfigured):
			logger.Debug("skipping ai backend", zap.String("backend", name), zap.String("reason", "no api key"))
		case err != nil:
			logger.Warn("skipping ai backend", zap.String("backend", name), zap.Error(err))
		default:
			logger.Info("ai backend enabled", zap.String("backend", name))
			backends = append(backends, b)
		}
	}

	if cfg.Gemini != nil {
		b, err := newGemini(ctx, cfg.Gemini, logger)
		add("gemini", b, err)
	}
	if cfg.OpenAI != nil {
		b, err := newOpenAI(cfg.OpenAI, logger)
		add("openai", b, err)
	}
	if cfg.Anthropic != nil {
		b, err := newAnthropic(cfg.Anthropic, logger)
		add("anthropic", b, err)
	}

	return backends
}

func newGemini(ctx context.Context, cfg *GeminiConfig, logger *zap.Logger) (ai.Backend, error) {
	key, err := loadKey("gemini api key", cfg.APIKey, cfg.APIKeyFile, "GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	return gemini.NewGenerator(ctx, key, cfg.Model, cfg.MaxRetries, logger)
}

func newOpenAI(cfg *ProviderConfig, logger *zap.Logger) (ai.Backend, error) {
	key, err := loadKey("openai api key", cfg.APIKey, cfg.APIKeyFile, "OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}
	return openai.New(openai.Config{
		APIKey:     key,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.MaxRetries,
	}, logger)
}

func newAnthropic(cfg *ProviderConfig, logger *zap.Logger) (ai.Backend, error) {
	key, err := loadKey("anthropic api key", cfg.APIKey, cfg.APIKeyFile, "ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}
	return anthropic.New(anthropic.Config{
		APIKey:     key,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.MaxRetries,
	}, logger)
}

func loadKey(name, value, file, env string) (string, error) {
	if strings.TrimSpace(value) == "" && strings.TrimSpace(file) == "" && strings.TrimSpace(os.Getenv(env)) == "" {
		return "", errNotConfigured
	}
	return secrets.Load(secrets.Source{Name: name, Value: value, File: file, Env: env})
}
