package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// testConfig writes a config file pointing at fresh home and repository
// directories and returns all three paths.
func testConfig(t *testing.T) (cfgPath, home, repoDir string) {
	t.Helper()
	base := t.TempDir()
	home = filepath.Join(base, "home")
	repoDir = filepath.Join(base, "dotfiles")
	require.NoError(t, os.Mkdir(home, 0755))
	require.NoError(t, os.Mkdir(repoDir, 0755))

	cfgPath = filepath.Join(base, "config.toml")
	content := fmt.Sprintf("homedir = %q\nrepository = %q\nprefix = \"dot-\"\n", home, repoDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath, home, repoDir
}

func TestListCommand(t *testing.T) {
	cfgPath, _, repoDir := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "dot-vimrc"), []byte("set number"), 0644))

	out, err := runCommand(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, ".vimrc")
	assert.Contains(t, out, "missing")
}

func TestSyncAndCheckCommands(t *testing.T) {
	cfgPath, home, repoDir := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "dot-vimrc"), []byte("set number"), 0644))

	out, err := runCommand(t, "--config", cfgPath, "sync")
	require.NoError(t, err)
	assert.Empty(t, out)

	info, err := os.Lstat(filepath.Join(home, ".vimrc"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	out, err = runCommand(t, "--config", cfgPath, "check")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNothingToReport)
}

func TestSyncSkipReports(t *testing.T) {
	cfgPath, home, repoDir := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "dot-bashrc"), []byte("repo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bashrc"), []byte("local"), 0644))

	out, err := runCommand(t, "--config", cfgPath, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, `Skipping ".bashrc"`)

	// Soft skips exit zero and leave the local file alone.
	content, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, "local", string(content))
}

func TestMoveCommandToExistingTarget(t *testing.T) {
	cfgPath, _, repoDir := testConfig(t)
	occupied := filepath.Join(filepath.Dir(repoDir), "occupied")
	require.NoError(t, os.Mkdir(occupied, 0755))

	_, err := runCommand(t, "--config", cfgPath, "move", occupied)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUnknownConfigKeyFailsCommand(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("no_such_key = true\n"), 0644))

	_, err := runCommand(t, "--config", cfgPath, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_key")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotlink version")
}

func TestTopicsCommand(t *testing.T) {
	out, err := runCommand(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "usage")
	assert.Contains(t, out, "configuration")

	_, err = runCommand(t, "topics", "no-such-topic")
	require.Error(t, err)
}
