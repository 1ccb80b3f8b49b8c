// Package container provides dependency injection for the smart-benefit application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"fjacquet/smart-benefit/internal/config"
	"fjacquet/smart-benefit/internal/evaluator"
	"fjacquet/smart-benefit/internal/extractor"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/report"
	"fjacquet/smart-benefit/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.CardStore
	generator extractor.Generator
	extractor *extractor.Extractor
	evaluator *evaluator.Evaluator
	reports   *report.Generator

	closer func() error
}

// NewContainer creates and wires all application dependencies.
// The Gemini generator is only created when an API key is configured.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	var generator extractor.Generator
	var closer func() error
	if cfg.HasAPIKey() {
		gemini, err := extractor.NewGeminiGenerator(context.Background(), cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create generative model client: %w", err)
		}
		generator = gemini
		closer = gemini.Close
		logger.Info("Rule extraction enabled", logging.Field{Key: logging.FieldModel, Value: gemini.Model()})
	} else {
		logger.Info("Rule extraction disabled: no API key configured")
	}

	return newContainer(cfg, logger, generator, closer), nil
}

// NewContainerWithGenerator wires the application around a caller-supplied
// generator instead of creating a Gemini client. A nil generator leaves
// extraction unconfigured.
func NewContainerWithGenerator(cfg *config.Config, logger logging.Logger, generator extractor.Generator) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}
	return newContainer(cfg, logger, generator, nil), nil
}

func newContainer(cfg *config.Config, logger logging.Logger, generator extractor.Generator, closer func() error) *Container {
	c := &Container{
		logger:    logger,
		config:    cfg,
		store:     store.NewCardStore(cfg.Cards.File, logger),
		generator: generator,
		extractor: extractor.NewExtractor(generator, logger),
		evaluator: evaluator.NewEvaluator(),
		reports:   report.NewGenerator(logger),
		closer:    closer,
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "extraction_enabled", Value: generator != nil},
		logging.Field{Key: logging.FieldFile, Value: cfg.Cards.File})

	return c
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the card store.
func (c *Container) GetStore() *store.CardStore {
	return c.store
}

// GetGenerator returns the generative model backend, or nil when extraction is disabled.
func (c *Container) GetGenerator() extractor.Generator {
	return c.generator
}

// GetExtractor returns the rule extraction client.
func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

// GetEvaluator returns the benefit evaluator.
func (c *Container) GetEvaluator() *evaluator.Evaluator {
	return c.evaluator
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// RequestContext derives the context for one generative model call from the
// configured timeout. A timeout of zero means no deadline.
func (c *Container) RequestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if seconds := c.config.AI.TimeoutSeconds; seconds > 0 {
		return context.WithTimeout(parent, time.Duration(seconds)*time.Second)
	}
	return context.WithCancel(parent)
}

// Close releases the generative model client, if one was created.
func (c *Container) Close() error {
	var err error
	if c.closer != nil {
		err = c.closer()
		c.closer = nil
	}
	if err != nil {
		c.logger.WithError(err).Warn("Failed to close generative model client")
		return fmt.Errorf("failed to close container: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
