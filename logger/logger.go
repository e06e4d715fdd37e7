// Package logger builds zap loggers from a Config or from a configuration.Configuration.
package logger

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/fixedbytes/configuration"
	"github.com/iotaledger/hive.go/ierrors"
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	zapCfg, err := cfg.zapConfig()
	if err != nil {
		return nil, err
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return root, nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the logger keys of config.
// Keys that are not set keep the value of DefaultCfg.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*zap.Logger, error) {
	cfg := DefaultCfg

	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}
