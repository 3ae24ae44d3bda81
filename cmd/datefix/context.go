package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"datefix/internal/config"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// resolvedLogLevel returns the flag override when given, otherwise the
// configured level.
func (c *commandContext) resolvedLogLevel(cfg *config.Config) string {
	if c.logLevelFlag != nil {
		if value := strings.TrimSpace(*c.logLevelFlag); value != "" {
			return strings.ToLower(value)
		}
	}
	return cfg.Logging.Level
}

func (c *commandContext) resolvedLogFormat(cfg *config.Config) string {
	if c.logFormatFlag != nil {
		if value := strings.TrimSpace(*c.logFormatFlag); value != "" {
			return strings.ToLower(value)
		}
	}
	return cfg.Logging.Format
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
