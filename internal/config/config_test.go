package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env or
// quizdeck.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "xdg-state"))
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("questions", "", "")
	fs.Duration("timeout", 10*time.Second, "")
	fs.String("log-file", "", "")
	fs.String("log-level", "info", "")
	fs.String("config", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "", cfg.Questions)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "xdg-state", "quizdeck", "quizdeck.log"), cfg.Log.File)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Env(t *testing.T) {
	chdirTemp(t)
	t.Setenv("QUIZDECK_QUESTIONS", "https://example.com/q.json")
	t.Setenv("QUIZDECK_FETCH_TIMEOUT", "3s")
	t.Setenv("QUIZDECK_LOG_LEVEL", "debug")
	t.Setenv("QUIZDECK_ENV", "production")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/q.json", cfg.Questions)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	dotenv := "QUIZDECK_QUESTIONS=from-dotenv.json\nQUIZDECK_LOG_LEVEL=warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.Questions)
	assert.Equal(t, "warn", cfg.Log.Level)

	_, set := os.LookupEnv("QUIZDECK_QUESTIONS")
	assert.False(t, set, ".env must not leak into the process environment")
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZDECK_QUESTIONS=from-dotenv.json\n"), 0o644))
	t.Setenv("QUIZDECK_QUESTIONS", "from-env.json")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Questions)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZDECK_QUESTIONS=\"unterminated\n"), 0o644))

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "questions: deck.yaml\nfetch_timeout: 5s\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizdeck.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "deck.yaml", cfg.Questions)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverride(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("QUIZDECK_QUESTIONS", "from-env.json")

	explicit := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("log:\n  level: error\n"), 0o644))

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--questions", "from-flag.json", "--timeout", "2s", "--config", explicit}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.Questions)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("QUIZDECK_LOG_LEVEL", "chatty")

	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_Timeout(t *testing.T) {
	cfg := Config{FetchTimeout: 0, Log: Log{Level: "info"}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
