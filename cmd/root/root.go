// Package root contains the root command for the application
package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kjohnson1213/outfitter-finance/internal/config"
	"github.com/Kjohnson1213/outfitter-finance/internal/container"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// GlobalFlags are the flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	OrgID      string
	SeasonID   string
	LogLevel   string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "outfitter",
		Short: "Bookkeeping for hunting outfitters: expense imports and payment schedules.",
		Long: `outfitter imports business expenses from bank or card CSV exports and
spreadsheets, records sold hunts, and generates each hunt's deposit and final
payment schedule.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Flags holds the parsed global flags
	Flags = GlobalFlags{}

	cfg *config.Config
	log logging.Logger
	app *container.Container
)

// Execute runs the command tree and then releases the container. Cobra skips
// post-run hooks when a command fails, so closing happens here instead.
func Execute(ctx context.Context) error {
	err := Cmd.ExecuteContext(ctx)
	return errors.Join(err, Close())
}

// Init registers the global flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.outfitter, .outfitter or .)")
	Cmd.PersistentFlags().StringVar(&Flags.OrgID, "org", "", "Organization id (overrides org.id)")
	Cmd.PersistentFlags().StringVar(&Flags.SeasonID, "season", "", "Season id (overrides org.season_id)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

func setup(cmd *cobra.Command, args []string) error {
	if cfg != nil {
		return nil
	}

	loaded, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if err := applyFlags(loaded); err != nil {
		return err
	}

	cfg = loaded
	log = cfg.NewLogger()
	logging.SetLogger(log)
	return nil
}

func applyFlags(c *config.Config) error {
	if Flags.OrgID != "" {
		c.Org.ID = Flags.OrgID
	}
	if Flags.SeasonID != "" {
		c.Org.SeasonID = Flags.SeasonID
	}
	if Flags.LogLevel != "" {
		level := strings.ToLower(Flags.LogLevel)
		if _, err := logrus.ParseLevel(level); err != nil {
			return fmt.Errorf("invalid log level: %s", Flags.LogLevel)
		}
		c.Log.Level = level
	}
	return nil
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the command logger.
func Logger() logging.Logger {
	return logging.OrDefault(log)
}

// Scope returns the organization and season the command acts for.
func Scope() models.Scope {
	if cfg == nil {
		return models.Scope{}
	}
	return models.Scope{OrgID: cfg.Org.ID, SeasonID: cfg.Org.SeasonID}
}

// Container opens the database on first use and returns the wired
// application.
func Container() (*container.Container, error) {
	if app != nil {
		return app, nil
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	c, err := container.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	app = c
	return app, nil
}

// SetContainer installs a prebuilt container and its configuration. Used by
// tests to run commands against an in-memory repository.
func SetContainer(c *container.Container) {
	app = c
	if c != nil {
		cfg = c.GetConfig()
		log = c.GetLogger()
	}
}

// Close releases the container, if one was opened, and forgets the loaded
// configuration.
func Close() error {
	var err error
	if app != nil {
		err = app.Close()
	}
	app = nil
	cfg = nil
	log = nil
	return err
}
