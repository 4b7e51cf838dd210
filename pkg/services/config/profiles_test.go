package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".ghsecrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfile(t *testing.T) {
	path := writeProfiles(t, `
[default]
token = ghp_default

[enterprise]
token = ghp_enterprise
base_url = https://github.example.com
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "default", profile.Name)
	assert.Equal(t, "ghp_default", profile.Token)
	assert.Empty(t, profile.BaseURL)

	profile, err = registry.GetProfile(context.Background(), "enterprise")
	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com", profile.BaseURL)
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeProfiles(t, `
[default]
token = ghp_default

[work]
token = ghp_work
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "work"}, profiles)
}

func TestRegistry_MissingProfile(t *testing.T) {
	path := writeProfiles(t, "[default]\ntoken = ghp_default\n")

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "nope")
	assert.ErrorContains(t, err, "profile nope not found")
}

func TestRegistry_ProfileWithoutToken(t *testing.T) {
	path := writeProfiles(t, "[default]\nbase_url = https://github.example.com\n")

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "default")
	assert.ErrorContains(t, err, "has no token")
}

func TestRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
