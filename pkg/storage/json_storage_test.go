package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	s := NewJSONStorage(t.TempDir())

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultMCPHTTPPort, cfg.MCPHTTPPort)
	assert.True(t, cfg.MCPHTTPEnabled)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0600))

	_, err := NewJSONStorage(dir).Load()
	assert.Error(t, err)
}

func TestAPIKeys(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStorage(dir)

	key, err := s.GenerateAPIKey("ci")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key.Key, apiKeyPrefix))
	assert.Len(t, key.Key, len(apiKeyPrefix)+64)
	assert.Equal(t, "ci", key.Name)

	assert.True(t, s.IsValidAPIKey(key.Key))
	assert.False(t, s.IsValidAPIKey(key.Key+"x"))
	assert.False(t, s.IsValidAPIKey(""))

	// a fresh instance over the same directory sees the key
	assert.True(t, NewJSONStorage(dir).IsValidAPIKey(key.Key))

	keys, err := s.GetAPIKeys()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, key.Key, keys[0].Key)

	require.NoError(t, s.RemoveAPIKey(key.Key))
	assert.False(t, s.IsValidAPIKey(key.Key))
	assert.ErrorIs(t, s.RemoveAPIKey(key.Key), ErrAPIKeyNotFound)
}

func TestGenerateAPIKeyDefaultName(t *testing.T) {
	key, err := NewJSONStorage(t.TempDir()).GenerateAPIKey("  ")
	require.NoError(t, err)
	assert.Equal(t, "generated-key", key.Name)
}

func TestMCPHTTPSettings(t *testing.T) {
	s := NewJSONStorage(t.TempDir())

	require.NoError(t, s.SetMCPHTTPPort("9000"))
	require.NoError(t, s.SetMCPHTTPEnabled(false))

	port, err := s.GetMCPHTTPPort()
	require.NoError(t, err)
	assert.Equal(t, "9000", port)

	enabled, err := s.GetMCPHTTPEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestPendingRequests(t *testing.T) {
	s := NewJSONStorage(t.TempDir())
	req := PendingRequest{UserID: 42, Username: "alice", ChatID: -100, ThreadID: 7}

	require.NoError(t, s.AddPendingRequest(req))
	assert.ErrorIs(t, s.AddPendingRequest(req), ErrPendingRequestExists)

	pending, err := s.IsPendingRequest(42)
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, s.RemovePendingRequest(42))
	assert.ErrorIs(t, s.RemovePendingRequest(42), ErrPendingRequestNotFound)

	requests, err := s.GetPendingRequests()
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestAllowedUsersScopes(t *testing.T) {
	s := NewJSONStorage(t.TempDir())

	require.NoError(t, s.AddAllowedUser(1, AccessScope{ChatID: 1}))
	require.NoError(t, s.AddAllowedUser(1, AccessScope{ChatID: -100, ThreadID: 3}))
	require.NoError(t, s.AddAllowedUser(1, AccessScope{ChatID: 1}))

	users, err := s.GetAllowedUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Len(t, users[0].Scopes, 2)

	assert.True(t, s.IsUserAllowed(1, 1, 0))
	assert.True(t, s.IsUserAllowed(1, -100, 3))
	assert.False(t, s.IsUserAllowed(1, -100, 4))
	assert.False(t, s.IsUserAllowed(2, 1, 0))

	require.NoError(t, s.RemoveAllowedUser(1))
	assert.False(t, s.IsUserAllowed(1, 1, 0))
}
