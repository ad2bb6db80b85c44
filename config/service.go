package config

import (
	"github.com/kbukum/seqfns/logger"
	"github.com/kbukum/seqfns/validation"
)

// Environments accepted by ServiceConfig.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// ServiceConfig holds the settings every command shares. Embed it with
// `mapstructure:",squash"` to keep its keys at the top level.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging" validate:"-"`
}

// ApplyDefaults fills empty fields. Development turns on debug logging.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Environment == EnvDevelopment {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
}

// Validate reports every invalid field at once.
func (c *ServiceConfig) Validate() error {
	return validation.New().
		Merge(validation.Validate(c)).
		Merge(c.Logging.Validate()).
		Err()
}

// GetServiceConfig lets types embedding ServiceConfig expose it through an
// interface.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}
