package bootstrap

import (
	"github.com/kbukum/seqfns/config"
)

// Config is satisfied by any pointer to a struct embedding
// config.ServiceConfig:
//
//	type Config struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Range RangeConfig    `mapstructure:"range"`
//	}
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
