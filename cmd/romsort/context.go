package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"romsort/internal/config"
	"romsort/internal/logging"
)

type commandContext struct {
	configFlag *string
	dryRunFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	created    bool
	configErr  error
}

func newCommandContext(configFlag *string, dryRunFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, dryRunFlag: dryRunFlag}
}

// ensureConfig loads the configuration once per invocation. A missing file is
// self-healing: defaults are written to the requested path and a notice goes
// to stderr.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = *c.configFlag
		}
		cfg, resolved, created, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.created = created
	})
	if c.configErr != nil {
		return nil, c.configErr
	}
	if c.created {
		fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file not found; wrote defaults to %s\n", c.configPath)
		c.created = false
	}
	return c.config, nil
}

func (c *commandContext) dryRun() bool {
	return c.dryRunFlag != nil && *c.dryRunFlag
}

// newLogger builds the run logger from configuration: console plus the
// append-mode log file.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, LogFile: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}
	return logger, nil
}
