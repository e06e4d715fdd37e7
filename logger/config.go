package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
)

// Configuration keys read by NewRootLoggerFromConfiguration.
const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config selects level, encoding and sinks of a root logger.
type Config struct {
	// Level is the minimum enabled level, parsed with zapcore.ParseLevel.
	Level string `koanf:"level"`
	// DisableCaller drops the file:line annotation.
	DisableCaller bool `koanf:"disableCaller"`
	// DisableStacktrace stops capturing stacktraces on error level.
	DisableStacktrace bool `koanf:"disableStacktrace"`
	// Encoding is "console" or "json".
	Encoding string `koanf:"encoding"`
	// OutputPaths are file paths or URLs, "stdout" and "stderr" included.
	OutputPaths []string `koanf:"outputPaths"`
}

// DefaultCfg logs to stderr so that stdout only carries command output.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

// Defaults returns cfg as flattened configuration keys for configuration.LoadDefaults.
func (cfg Config) Defaults() map[string]any {
	return map[string]any{
		ConfigurationKeyLevel:             cfg.Level,
		ConfigurationKeyDisableCaller:     cfg.DisableCaller,
		ConfigurationKeyDisableStacktrace: cfg.DisableStacktrace,
		ConfigurationKeyEncoding:          cfg.Encoding,
		ConfigurationKeyOutputPaths:       cfg.OutputPaths,
	}
}

func (cfg Config) zapConfig() (zap.Config, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}, nil
}
