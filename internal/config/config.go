package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/types"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// DefaultConfigFile is the name of the optional config file looked up in the
// working directory when no explicit path is given.
const DefaultConfigFile = "oasfilter.yml"

// FilterConfig holds the tunables of the schema filter.
// EnumSchemaName is the name of the schema whose enum lists all sObject types.
// RefMarker is the substring an allOf $ref must contain for a schema to be
// classified as an sObject schema.
// Indent is the number of spaces used when writing the output document.
// Validate enables a kin-openapi check of the filtered document.
type FilterConfig struct {
	EnumSchemaName string `koanf:"enumSchemaName" yaml:"enumSchemaName"`
	RefMarker      string `koanf:"refMarker" yaml:"refMarker"`
	Indent         int    `koanf:"indent" yaml:"indent"`
	Validate       bool   `koanf:"validate" yaml:"validate"`
}

// Config is the main configuration struct.
type Config struct {
	Filter *FilterConfig `koanf:"filter" yaml:"filter"`
}

// NewDefaultFilterConfig creates a FilterConfig with Salesforce defaults.
func NewDefaultFilterConfig() *FilterConfig {
	return &FilterConfig{
		EnumSchemaName: "SObjectType",
		RefMarker:      "SObject",
		Indent:         2,
	}
}

// NewDefaultConfig creates a new default config in case the config file is
// missing, not found or any other error.
func NewDefaultConfig() *Config {
	return &Config{
		Filter: NewDefaultFilterConfig(),
	}
}

// EnsureConfigValues ensures that all config values are set.
func (c *Config) EnsureConfigValues() {
	defaultConfig := NewDefaultFilterConfig()

	if c.Filter == nil {
		c.Filter = defaultConfig
		return
	}

	if c.Filter.EnumSchemaName == "" {
		c.Filter.EnumSchemaName = defaultConfig.EnumSchemaName
	}
	if c.Filter.RefMarker == "" {
		c.Filter.RefMarker = defaultConfig.RefMarker
	}
	if c.Filter.Indent <= 0 {
		c.Filter.Indent = defaultConfig.Indent
	}
}

// transformConfig applies environment variable overrides to the loaded keys.
// Key "filter.refMarker" is overridden by FILTER_REF_MARKER, and so on.
func (c *Config) transformConfig(k *koanf.Koanf) *koanf.Koanf {
	transformed := koanf.New(".")
	for key, value := range k.All() {
		envKey := strings.ToUpper(types.ToSnakeCase(key))
		finalValue := value

		if envValue, exists := os.LookupEnv(envKey); exists {
			finalValue = envValue
		}

		_ = transformed.Set(key, finalValue)
	}
	return transformed
}

// MustConfig creates a new config from a YAML file path.
// An empty path falls back to DefaultConfigFile in the working directory;
// a missing or invalid file yields the default config.
func MustConfig(filePath string) *Config {
	res := NewDefaultConfig()

	if filePath == "" {
		filePath = DefaultConfigFile
		if _, err := os.Stat(filePath); err != nil {
			return res
		}
	}

	k := koanf.New(".")
	provider := file.Provider(filePath)
	if err := k.Load(provider, yaml.Parser()); err != nil {
		slog.Error("error loading config. using fallback", "error", err)
		return res
	}

	cfg := res
	transformed := cfg.transformConfig(k)
	if err := transformed.Unmarshal("", cfg); err != nil {
		slog.Error("error loading config. using fallback", "error", err)
		return NewDefaultConfig()
	}
	cfg.EnsureConfigValues()

	return cfg
}

// NewConfigFromContent creates a new config from a YAML file content.
func NewConfigFromContent(content []byte) (*Config, error) {
	k := koanf.New(".")
	provider := rawbytes.Provider(content)
	if err := k.Load(provider, yaml.Parser()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	transformed := cfg.transformConfig(k)
	if err := transformed.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.EnsureConfigValues()

	return cfg, nil
}
