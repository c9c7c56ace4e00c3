package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "Field", cfg.Schema.Prefix)
	assert.Equal(t, "", cfg.Schema.Path)
	assert.Equal(t, 1, cfg.Decode.Workers)
	assert.Equal(t, 1024, cfg.Decode.ChunkSize)
	assert.Equal(t, 0, cfg.Decode.MaxErrors)
	assert.False(t, cfg.Decode.FailFast)
	assert.False(t, cfg.Decode.Codepoints)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fwschema.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[schema]
path = "layout.properties"
prefix = "Col"

[decode]
fail_fast = true
workers = 3

[output]
format = "YAML"
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "layout.properties", cfg.Schema.Path)
	assert.Equal(t, "Col", cfg.Schema.Prefix)
	assert.True(t, cfg.Decode.FailFast)
	assert.Equal(t, 3, cfg.Decode.Workers)
	assert.Equal(t, FormatYAML, cfg.Output.Format, "format is normalized to lower case")
	assert.Equal(t, 1024, cfg.Decode.ChunkSize, "unset keys keep their defaults")
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fwschema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode:\n  codepoints: true\n  max_errors: 10\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Decode.Codepoints)
	assert.Equal(t, 10, cfg.Decode.MaxErrors)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fwschema.toml")
	require.NoError(t, os.WriteFile(path, []byte("[decode]\nworkers = 2\nchunk_size = 10\nmax_errors = 5\n"), 0o644))

	t.Setenv("FWSCHEMA_DECODE_WORKERS", "4")
	t.Setenv("FWSCHEMA_DECODE_CHUNK_SIZE", "20")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", 1, "")
	fs.Int("chunk-size", 1024, "")
	fs.String("format", "json", "")
	require.NoError(t, fs.Parse([]string{"--workers=8"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Decode.Workers, "flag beats env and file")
	assert.Equal(t, 20, cfg.Decode.ChunkSize, "env beats file")
	assert.Equal(t, 5, cfg.Decode.MaxErrors, "file beats defaults")
	assert.Equal(t, FormatJSON, cfg.Output.Format, "unchanged flag does not override")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Schema: SchemaConfig{Prefix: "Field"},
			Decode: DecodeConfig{Workers: 1, ChunkSize: 10},
			Output: OutputConfig{Format: FormatText},
		}
	}

	for _, tt := range []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, "unknown output format"},
		{"empty prefix", func(c *Config) { c.Schema.Prefix = "" }, "prefix"},
		{"negative max errors", func(c *Config) { c.Decode.MaxErrors = -1 }, "max errors"},
		{"zero chunk size", func(c *Config) { c.Decode.ChunkSize = 0 }, "chunk size"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("workers default to GOMAXPROCS", func(t *testing.T) {
		c := valid()
		c.Decode.Workers = 0
		require.NoError(t, c.Validate())
		assert.Equal(t, runtime.GOMAXPROCS(0), c.Decode.Workers)
	})
}

func TestWriteTOML(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteTOML(&buf))

	out := buf.String()
	assert.Contains(t, out, "[schema]")
	assert.Contains(t, out, `prefix = "Field"`)
	assert.Contains(t, out, "[decode]")
	assert.Contains(t, out, "chunk_size = 1024")
	assert.Contains(t, out, `format = "json"`)
}
