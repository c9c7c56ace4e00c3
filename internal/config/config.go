// Package config loads fwschema configuration from defaults, an optional
// config file, FWSCHEMA_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"io"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wallaceicy06/go-fixedschema"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FWSCHEMA"

// Output formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

// Config is the complete fwschema configuration.
type Config struct {
	Schema SchemaConfig `mapstructure:"schema" toml:"schema"`
	Decode DecodeConfig `mapstructure:"decode" toml:"decode"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

type SchemaConfig struct {
	Path   string `mapstructure:"path" toml:"path"`
	Prefix string `mapstructure:"prefix" toml:"prefix"`
}

type DecodeConfig struct {
	Codepoints bool `mapstructure:"codepoints" toml:"codepoints"`
	FailFast   bool `mapstructure:"fail_fast" toml:"fail_fast"`
	MaxErrors  int  `mapstructure:"max_errors" toml:"max_errors"` // 0 means unlimited
	Workers    int  `mapstructure:"workers" toml:"workers"`
	ChunkSize  int  `mapstructure:"chunk_size" toml:"chunk_size"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format"`
	Path   string `mapstructure:"path" toml:"path"` // empty means stdout
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema.path", "")
	v.SetDefault("schema.prefix", fixedwidth.DefaultPrefix)

	v.SetDefault("decode.codepoints", false)
	v.SetDefault("decode.fail_fast", false)
	v.SetDefault("decode.max_errors", 0)
	v.SetDefault("decode.workers", 1)
	v.SetDefault("decode.chunk_size", 1024)

	v.SetDefault("output.format", FormatJSON)
	v.SetDefault("output.path", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"schema":     "schema.path",
	"prefix":     "schema.prefix",
	"codepoints": "decode.codepoints",
	"fail-fast":  "decode.fail_fast",
	"max-errors": "decode.max_errors",
	"workers":    "decode.workers",
	"chunk-size": "decode.chunk_size",
	"format":     "output.format",
	"output":     "output.path",
	"log-json":   "log.json",
	"log-level":  "log.level",
}

// New returns a viper instance with defaults and environment binding. If
// path is set the config file is read; its type follows its extension.
// Flags present in fs override everything else.
func New(path string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", name)
				}
			}
		}
	}
	return v, nil
}

// Load reads the configuration and validates it.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v, err := New(path, fs)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values and fills in derived ones.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatMsgpack, FormatText:
	default:
		return errors.Errorf("unknown output format %q (want json, yaml, msgpack or text)", c.Output.Format)
	}

	if c.Schema.Prefix == "" {
		return errors.New("schema prefix must not be empty")
	}
	if c.Decode.MaxErrors < 0 {
		return errors.Errorf("max errors must not be negative, have %d", c.Decode.MaxErrors)
	}
	if c.Decode.Workers <= 0 {
		c.Decode.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Decode.ChunkSize <= 0 {
		return errors.Errorf("chunk size must be positive, have %d", c.Decode.ChunkSize)
	}
	return nil
}

// WriteTOML renders the configuration as a TOML document.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
