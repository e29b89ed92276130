// Package container wires the application dependencies: configuration,
// logger, Gemini client, extractor, advisor and exporters. Commands receive
// everything through the container instead of reaching for globals.
package container

import (
	"context"
	"fmt"
	"time"

	"fjacquet/slipscan/internal/advisor"
	"fjacquet/slipscan/internal/config"
	"fjacquet/slipscan/internal/export"
	"fjacquet/slipscan/internal/extractor"
	"fjacquet/slipscan/internal/fileutils"
	"fjacquet/slipscan/internal/gemini"
	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/sliperror"
	"fjacquet/slipscan/internal/store"
)

// Container holds the wired application dependencies. It is immutable after
// creation apart from the lazily created Gemini client.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.CategoryStore
	categories []string

	geminiClient *gemini.Client
}

// NewContainer creates and wires the dependencies that need no network
// access. The Gemini client is created on first use so commands that never
// call the AI work without a credential.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	export.SetLogger(logger)
	export.SetDelimiter([]rune(cfg.Export.CSVDelimiter)[0])
	fileutils.SetLogger(logger)

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	categories, err := categoryStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load category suggestions: %w", err)
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model},
		logging.Field{Key: "categories", Value: len(categories)})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      categoryStore,
		categories: categories,
	}, nil
}

// GetLogger returns the container's logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategories returns the loaded category suggestions.
func (c *Container) GetCategories() []string {
	return c.categories
}

// GetGeminiClient returns the Gemini client, creating it on first call.
// A missing credential is a blocking error: nothing is processed without it.
func (c *Container) GetGeminiClient(ctx context.Context) (*gemini.Client, error) {
	if c.geminiClient != nil {
		return c.geminiClient, nil
	}

	if c.config.AI.APIKey == "" {
		return nil, &sliperror.MissingCredentialError{Variable: "GEMINI_API_KEY"}
	}

	client, err := gemini.NewClient(ctx, c.config.AI.APIKey, c.config.AI.Model, c.config.AI.AdviceModel, c.logger)
	if err != nil {
		return nil, err
	}

	c.geminiClient = client
	return client, nil
}

// GetExtractor returns an extractor backed by the Gemini client.
func (c *Container) GetExtractor(ctx context.Context) (*extractor.Extractor, error) {
	client, err := c.GetGeminiClient(ctx)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(c.config.AI.TimeoutSeconds) * time.Second
	return extractor.New(client, c.categories, timeout, c.logger), nil
}

// GetAdvisor returns an advisor backed by the Gemini client.
func (c *Container) GetAdvisor(ctx context.Context) (*advisor.Advisor, error) {
	client, err := c.GetGeminiClient(ctx)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(c.config.AI.TimeoutSeconds) * time.Second
	return advisor.New(client, timeout, c.logger), nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.geminiClient != nil {
		return c.geminiClient.Close()
	}
	return nil
}
