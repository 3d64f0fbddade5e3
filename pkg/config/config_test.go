package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, filepath.Join(home, "Dotfiles"), cfg.Repository)
	assert.Equal(t, "", cfg.Prefix)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, cfg.Externals)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
homedir    = "/srv/home"
repository = "/srv/dotfiles"
prefix     = "dot-"
ignore     = ["*.bak", "README*"]

[externals]
".foorc" = "/opt/foo/config"
".barrc" = "~/bar/config"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/home", cfg.HomeDir)
	assert.Equal(t, "/srv/dotfiles", cfg.Repository)
	assert.Equal(t, "dot-", cfg.Prefix)
	assert.Equal(t, []string{"*.bak", "README*"}, cfg.Ignore)
	assert.Equal(t, "/opt/foo/config", cfg.Externals[".foorc"])
	// Home shorthand expands against the configured homedir.
	assert.Equal(t, "/srv/home/bar/config", cfg.Externals[".barrc"])
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `
repository = "/srv/dotfiles"
repositry  = "/srv/typo"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Contains(t, err.Error(), "repositry")
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `prefix = "dot-"`)
	t.Setenv("DOTLINK_PREFIX", "hidden-")
	t.Setenv("DOTLINK_REPOSITORY", "/srv/override")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hidden-", cfg.Prefix)
	assert.Equal(t, "/srv/override", cfg.Repository)
}

func TestTrailingSeparatorsStripped(t *testing.T) {
	path := writeConfig(t, `
homedir    = "/srv/home/"
repository = "/srv/dotfiles/"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/home", cfg.HomeDir)
	assert.Equal(t, "/srv/dotfiles", cfg.Repository)
}
