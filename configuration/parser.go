package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// lowerKeys returns a copy of m with all keys lower cased, nested maps included.
// YAML decodes nested maps as map[interface{}]interface{}, those are converted.
func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, val := range m {
		switch v := val.(type) {
		case map[string]any:
			val = lowerKeys(v)
		case map[any]any:
			val = lowerKeys(cast.ToStringMap(v))
		}

		out[strings.ToLower(key)] = val
	}

	return out
}

// JSONLowerParser parses JSON config files, all config keys are lower cased.
type JSONLowerParser struct {
	prefix string
	indent string
}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return json.MarshalIndent(o, p.prefix, p.indent)
}

// YAMLLowerParser parses YAML config files, all config keys are lower cased.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return yaml.Marshal(o)
}
