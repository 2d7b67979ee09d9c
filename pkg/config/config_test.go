package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultConfigValidate(t *testing.T) {
	is := is.New(t)
	t.Setenv("MEETBOT_DATA_PATH", t.TempDir())
	cfg := DefaultConfig()
	is.NoErr(cfg.Validate())
	is.True(filepath.IsAbs(cfg.DataPath))
	is.True(strings.HasPrefix(cfg.DB.DataSource, cfg.DataPath))
}

func TestParseEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("MEETBOT_DATA_PATH", t.TempDir())
	t.Setenv("MEETBOT_NAME", "Test Community")
	t.Setenv("MEETBOT_DB_DRIVER", "postgres")
	t.Setenv("MEETBOT_DB_DATA_SOURCE", "postgres://localhost:5432/meetbot")
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.Name, "Test Community")
	is.Equal(cfg.DB.Driver, "postgres")
	is.Equal(cfg.DB.DataSource, "postgres://localhost:5432/meetbot")
}

func TestWriteAndParseFile(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Name = "Round Trip"
	is.NoErr(cfg.WriteConfig())
	is.True(cfg.Exist())

	parsed := &Config{DataPath: cfg.DataPath}
	is.NoErr(parsed.ParseFile())
	is.Equal(parsed.Name, "Round Trip")
	is.Equal(parsed.DB.Driver, cfg.DB.Driver)
}

func TestValidateNilConfig(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err != ErrNilConfig {
		t.Errorf("Validate(nil) => %v, want %v", err, ErrNilConfig)
	}
}

func TestIsDebug(t *testing.T) {
	t.Setenv("MEETBOT_DEBUG", "1")
	t.Setenv("MEETBOT_VERBOSE", "")
	if !IsDebug() {
		t.Error("IsDebug() => false, want true")
	}
	if IsVerbose() {
		t.Error("IsVerbose() => true, want false")
	}
}

func TestIsVerboseRequiresDebug(t *testing.T) {
	t.Setenv("MEETBOT_DEBUG", "")
	t.Setenv("MEETBOT_VERBOSE", "1")
	if IsVerbose() {
		t.Error("IsVerbose() without debug => true, want false")
	}
}
