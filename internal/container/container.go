// Package container provides dependency injection for the outfitter
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"

	"github.com/Kjohnson1213/outfitter-finance/internal/config"
	"github.com/Kjohnson1213/outfitter-finance/internal/ingest"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
	"github.com/Kjohnson1213/outfitter-finance/internal/sale"
	"github.com/Kjohnson1213/outfitter-finance/internal/schedule"
	"github.com/Kjohnson1213/outfitter-finance/internal/store"
)

// Repository is everything the application reads from and writes to.
// store.GormStore and store.MemoryStore both satisfy it.
type Repository interface {
	ingest.ExpenseRepository
	sale.Repository
	ListExpenses(ctx context.Context, orgID string) ([]models.ExpenseRecord, error)
}

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	repo      Repository
	generator *schedule.Generator
	pipeline  *ingest.Pipeline
	sales     *sale.Service
}

// NewContainer opens the configured database and wires every component.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := cfg.NewLogger()

	repo, err := store.Open(store.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Debug:  cfg.Database.Debug,
	}, logger)
	if err != nil {
		return nil, err
	}

	c, err := NewContainerWithRepository(cfg, repo, logger)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	return c, nil
}

// NewContainerWithRepository wires every component around an existing
// repository. A nil logger is built from cfg.
func NewContainerWithRepository(cfg *config.Config, repo Repository, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("repository cannot be nil")
	}
	if logger == nil {
		logger = cfg.NewLogger()
	}

	generator, err := NewGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	pipeline := ingest.NewPipeline(repo, logger, cfg.Import.BatchSize)
	sales := sale.NewService(repo, generator, logger, sale.WithCurrency(cfg.Schedule.Currency))

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDriver, cfg.Database.Driver),
		logging.F(logging.FieldBatchSize, pipeline.BatchSize()))

	return &Container{
		logger:    logger,
		config:    cfg,
		repo:      repo,
		generator: generator,
		pipeline:  pipeline,
		sales:     sales,
	}, nil
}

// NewGenerator builds the schedule generator from the schedule section,
// reading the lead-time policy file when one is configured. It needs no
// database. A nil cfg means the stock policy.
func NewGenerator(cfg *config.Config, logger logging.Logger) (*schedule.Generator, error) {
	logger = logging.OrDefault(logger)

	var policy schedule.LeadTimePolicy = schedule.DefaultPolicy()
	if cfg != nil && cfg.Schedule.PolicyFile != "" {
		p, err := schedule.LoadPolicy(cfg.Schedule.PolicyFile)
		if err != nil {
			return nil, err
		}
		policy = p
		logger.Debug("Loaded lead-time policy", logging.F(logging.FieldFile, cfg.Schedule.PolicyFile))
	}
	return schedule.NewGenerator(policy, logger), nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRepository returns the container's repository.
func (c *Container) GetRepository() Repository {
	return c.repo
}

// GetGenerator returns the payment schedule generator.
func (c *Container) GetGenerator() *schedule.Generator {
	return c.generator
}

// GetPipeline returns the expense ingestion pipeline.
func (c *Container) GetPipeline() *ingest.Pipeline {
	return c.pipeline
}

// GetSaleService returns the sale service.
func (c *Container) GetSaleService() *sale.Service {
	return c.sales
}

// Scope returns the organization and season from configuration.
func (c *Container) Scope() models.Scope {
	return models.Scope{OrgID: c.config.Org.ID, SeasonID: c.config.Org.SeasonID}
}

// Close releases the repository's resources, if it holds any.
func (c *Container) Close() error {
	if closer, ok := c.repo.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
