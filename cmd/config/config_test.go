package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, Configure(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriorities, cfg.Priorities)
	assert.Equal(t, "all", cfg.DefaultFilter)
	assert.Equal(t, "none", cfg.DefaultSort)
	assert.Equal(t, "none", cfg.DefaultGroup)
	assert.Empty(t, cfg.Formats)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `priorities: [someday, soon, now]
log_level: debug
default_sort: priority
formats:
  tasks:
    extensions: [checklist]
    patterns: ["TODO*"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	require.NoError(t, Configure(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"someday", "soon", "now"}, cfg.Priorities)
	assert.Equal(t, "priority", cfg.DefaultSort)
	require.Contains(t, cfg.Formats, "tasks")
	assert.Equal(t, []string{"checklist"}, cfg.Formats["tasks"].Extensions)
	assert.Equal(t, []string{"TODO*"}, cfg.Formats["tasks"].Patterns)
	assert.Equal(t, logrus.DebugLevel, NewLogger(v).GetLevel())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LISTS_DEFAULT_GROUP", "tag")
	t.Setenv("LISTS_LOG_LEVEL", "nonsense")

	v := viper.New()
	require.NoError(t, Configure(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "tag", cfg.DefaultGroup)
	assert.Equal(t, logrus.WarnLevel, NewLogger(v).GetLevel())
}

func TestEmptyPrioritiesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("priorities: []\n"), 0644))

	v := viper.New()
	require.NoError(t, Configure(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriorities, cfg.Priorities)
}

func TestMissingExplicitConfig(t *testing.T) {
	v := viper.New()
	assert.Error(t, Configure(v, filepath.Join(t.TempDir(), "nope.yaml")))
}
