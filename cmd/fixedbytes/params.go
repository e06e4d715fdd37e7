package main

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/fixedbytes/configuration"
	"github.com/iotaledger/hive.go/fixedbytes/logger"
	"github.com/iotaledger/hive.go/ierrors"
)

const (
	envPrefix = "FIXEDBYTES"

	keyConfig        = "config"
	keyType          = "type"
	keyDisplayUpper  = "display.upper"
	keyDisplayPrefix = "display.prefix"
)

// ParametersDisplay controls how wire units are printed.
type ParametersDisplay struct {
	// Upper prints uppercase hex digits.
	Upper bool
	// Prefix prepends "0x".
	Prefix bool
}

// format returns the fmt verb matching the display parameters.
func (p ParametersDisplay) format() string {
	verb := "%x"
	if p.Upper {
		verb = "%X"
	}
	if p.Prefix {
		verb = verb[:1] + "#" + verb[1:]
	}

	return verb
}

var defaults = map[string]any{
	keyType:          "u64",
	keyDisplayUpper:  false,
	keyDisplayPrefix: false,
}

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("fixedbytes", flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String(keyConfig, "", "path to a JSON or YAML config file")
	flagSet.String(keyType, "u64", "wire type: u8, u16, u32, u64, i8, i16, i32, i64 or u256")
	flagSet.Bool(keyDisplayUpper, false, "print uppercase hex digits")
	flagSet.Bool(keyDisplayPrefix, false, "prefix hex output with 0x")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "minimum log level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "log encoding: console or json")

	return flagSet
}

// loadConfiguration merges defaults, the optional config file, env vars and flags, in that order.
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()
	if err := config.LoadDefaults(defaults); err != nil {
		return nil, ierrors.Wrap(err, "failed to load defaults")
	}
	if err := config.LoadDefaults(logger.DefaultCfg.Defaults()); err != nil {
		return nil, ierrors.Wrap(err, "failed to load logger defaults")
	}

	if configPath, _ := flagSet.GetString(keyConfig); configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	return config, nil
}
