package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment variables, e.g. QUIZDECK_QUESTIONS.
const EnvPrefix = "QUIZDECK"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration merged from defaults, an optional
// config file, environment variables and command-line flags.
type Config struct {
	Env          string        `mapstructure:"env"`           // local, production
	Questions    string        `mapstructure:"questions"`     // file path or http(s) URL; empty uses the built-in set
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // bound on loading the question document
	Log          Log           `mapstructure:"log"`
}

// Log configures the file logger. The terminal belongs to the TUI, so logs
// always go to a file.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load reads configuration. flags may be nil; when given, its "questions",
// "timeout", "log-file" and "log-level" flags override other sources, and
// "config" names an explicit config file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	dotenv, err := readDotenv(".env")
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("quizdeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault("env", "local")
	v.SetDefault("questions", "")
	v.SetDefault("fetch_timeout", "10s")
	v.SetDefault("log.level", "info")
	if p, err := DefaultLogPath(); err == nil {
		v.SetDefault("log.file", p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	if len(dotenv) > 0 {
		if err := v.MergeConfigMap(dotenv); err != nil {
			return nil, fmt.Errorf("merge .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configKeys are the keys settable from the environment or a .env file.
var configKeys = []string{"env", "questions", "fetch_timeout", "log.file", "log.level"}

// envName returns the variable name for a config key, e.g. QUIZDECK_LOG_LEVEL.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// readDotenv reads QUIZDECK_* values from a .env file without touching the
// process environment. Variables already set in the environment win, as
// AutomaticEnv picks them up. A missing file yields nothing.
func readDotenv(path string) (map[string]any, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	out := map[string]any{}
	for _, key := range configKeys {
		val, ok := vals[envName(key)]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(envName(key)); set {
			continue
		}
		section, leaf, nested := strings.Cut(key, ".")
		if !nested {
			out[key] = val
			continue
		}
		m, _ := out[section].(map[string]any)
		if m == nil {
			m = map[string]any{}
			out[section] = m
		}
		m[leaf] = val
	}
	return out, nil
}

// bindFlags maps CLI flag names onto config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := map[string]string{
		"questions": "questions",
		"timeout":   "fetch_timeout",
		"log-file":  "log.file",
		"log-level": "log.level",
	}
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: fetch_timeout must be positive, got %s", ErrInvalidConfig, c.FetchTimeout)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// IsProduction reports whether the production log encoder should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/quizdeck/quizdeck.log
// 2. ~/.local/state/quizdeck/quizdeck.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "quizdeck", "quizdeck.log"), nil
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quizdeck"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
