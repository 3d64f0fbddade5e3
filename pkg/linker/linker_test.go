package linker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("content"), 0644))
	link := filepath.Join(dir, "link")

	require.NoError(t, New().Create(target, link))

	content, err := os.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestCreateDirectoryLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "targetdir")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "nested"), 0755))
	link := filepath.Join(dir, "link")

	require.NoError(t, New().Create(target, link))

	info, err := os.Stat(filepath.Join(link, "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFailsWhenLinkExists(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("content"), 0644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(link, []byte("in the way"), 0644))

	assert.Error(t, New().Create(target, link))
}
