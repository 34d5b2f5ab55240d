package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "June", TitleCase("june"))
	assert.Equal(t, "Wednesday", TitleCase("WEDNESDAY"))
	assert.Equal(t, "New York City", TitleCase(" new  york city"))
	assert.Equal(t, "", TitleCase(""))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("washington", []string{"chicago", "washington"}))
	assert.False(t, ContainsString("boston", []string{"chicago", "washington"}))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ./datasets\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data_dir: ./datasets\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
