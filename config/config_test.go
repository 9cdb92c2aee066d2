package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/go-mclib/mcserver/config"
)

func TestLoad_DefaultsWithNoFile(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_players: 5\nlog_level: debug\n"), 0o644))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.MaxPlayers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.Defaults().ViewDistance, cfg.ViewDistance)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_players: 5\n"), 0o644))

	t.Setenv("MCSERVER_MAX_PLAYERS", "77")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 77, cfg.MaxPlayers)
}

func TestLoad_FlagOverridesEverything(t *testing.T) {
	v := viper.New()
	v.Set("max_players", 999) // simulates a bound CLI flag, highest precedence

	t.Setenv("MCSERVER_MAX_PLAYERS", "77")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 999, cfg.MaxPlayers)
}
