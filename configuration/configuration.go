package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
// Later sources overwrite earlier ones. Keys are case insensitive, they are stored lower cased.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given flattened key/value pairs into the loaded config.
func (c *Configuration) LoadDefaults(defaults map[string]any) error {
	return c.config.Load(confmap.Provider(lowerKeys(defaults), "."), nil)
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}
	if info.IsDir() {
		return ierrors.Errorf("given path is a directory instead of a file %s", filePath)
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return ierrors.Wrap(ErrUnknownConfigFormat, filePath)
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Set sets the value for the key.
func (c *Configuration) Set(key string, value any) error {
	return c.config.Load(confmap.Provider(map[string]any{strings.ToLower(key): value}, "."), nil)
}

// String returns the string value of a given key path or "" if the path does not exist.
func (c *Configuration) String(path string) string {
	return c.config.String(strings.ToLower(path))
}

// Strings returns the []string slice value of a given key path or an empty []string slice
// if the path does not exist or if the value is not a valid string slice.
func (c *Configuration) Strings(path string) []string {
	return c.config.Strings(strings.ToLower(path))
}

// Bool returns the bool value of a given key path or false if the path does not exist.
func (c *Configuration) Bool(path string) bool {
	return c.config.Bool(strings.ToLower(path))
}

// Exists returns true if the given key path exists in the config.
func (c *Configuration) Exists(path string) bool {
	return c.config.Exists(strings.ToLower(path))
}

// Unmarshal unmarshals the given key path into the given struct using the "koanf" struct tag.
// If an empty path is given, the whole config is unmarshaled.
func (c *Configuration) Unmarshal(path string, target any) error {
	return c.config.Unmarshal(strings.ToLower(path), target)
}
