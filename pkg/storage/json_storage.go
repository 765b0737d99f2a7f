package storage

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMCPHTTPPort is used when nothing was stored
const DefaultMCPHTTPPort = "8875"

// apiKeyPrefix marks generated keys
const apiKeyPrefix = "dmcp_"

// Storage errors
var (
	ErrAPIKeyNotFound         = errors.New("API key not found")
	ErrPendingRequestExists   = errors.New("request already pending")
	ErrPendingRequestNotFound = errors.New("pending request not found")
)

// jsonStorage implements Storage using a single JSON file
type jsonStorage struct {
	filePath string
	mu       sync.RWMutex
}

// NewJSONStorage creates a new JSON storage rooted at dataDir
func NewJSONStorage(dataDir string) Storage {
	return &jsonStorage{
		filePath: filepath.Join(dataDir, "config.json"),
	}
}

// Load loads configuration from JSON file
func (s *jsonStorage) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Save saves configuration to JSON file
func (s *jsonStorage) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(cfg)
}

// update runs a read-modify-write cycle under the write lock
func (s *jsonStorage) update(fn func(cfg *Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return s.write(cfg)
}

func (s *jsonStorage) read() (*Config, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

func (s *jsonStorage) write(cfg *Config) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// defaultConfig returns default configuration
func defaultConfig() *Config {
	return &Config{
		AllowedUsers:    []AllowedUser{},
		PendingRequests: []PendingRequest{},
		APIKeys:         []APIKey{},
		MCPHTTPPort:     DefaultMCPHTTPPort,
		MCPHTTPEnabled:  true,
	}
}

// GetAPIKeys returns all stored API keys
func (s *jsonStorage) GetAPIKeys() ([]APIKey, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.APIKeys, nil
}

// GenerateAPIKey creates and stores a new random key
func (s *jsonStorage) GenerateAPIKey(name string) (APIKey, error) {
	if strings.TrimSpace(name) == "" {
		name = "generated-key"
	}
	key := APIKey{
		Key:       apiKeyPrefix + strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := s.update(func(cfg *Config) error {
		cfg.APIKeys = append(cfg.APIKeys, key)
		return nil
	})
	if err != nil {
		return APIKey{}, err
	}
	return key, nil
}

// RemoveAPIKey removes an API key
func (s *jsonStorage) RemoveAPIKey(key string) error {
	return s.update(func(cfg *Config) error {
		kept := make([]APIKey, 0, len(cfg.APIKeys))
		for _, k := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(k.Key), []byte(key)) == 1 {
				continue
			}
			kept = append(kept, k)
		}
		if len(kept) == len(cfg.APIKeys) {
			return ErrAPIKeyNotFound
		}
		cfg.APIKeys = kept
		return nil
	})
}

// IsValidAPIKey checks if the provided key is valid
func (s *jsonStorage) IsValidAPIKey(key string) bool {
	if key == "" {
		return false
	}
	cfg, err := s.Load()
	if err != nil {
		return false
	}

	valid := false
	for _, k := range cfg.APIKeys {
		if subtle.ConstantTimeCompare([]byte(k.Key), []byte(key)) == 1 {
			valid = true
		}
	}
	return valid
}

// GetMCPHTTPPort returns the configured MCP HTTP port
func (s *jsonStorage) GetMCPHTTPPort() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	if cfg.MCPHTTPPort == "" {
		return DefaultMCPHTTPPort, nil
	}
	return cfg.MCPHTTPPort, nil
}

// SetMCPHTTPPort sets the MCP HTTP port
func (s *jsonStorage) SetMCPHTTPPort(port string) error {
	return s.update(func(cfg *Config) error {
		cfg.MCPHTTPPort = port
		return nil
	})
}

// GetMCPHTTPEnabled returns whether MCP HTTP server is enabled
func (s *jsonStorage) GetMCPHTTPEnabled() (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	return cfg.MCPHTTPEnabled, nil
}

// SetMCPHTTPEnabled sets whether MCP HTTP server is enabled
func (s *jsonStorage) SetMCPHTTPEnabled(enabled bool) error {
	return s.update(func(cfg *Config) error {
		cfg.MCPHTTPEnabled = enabled
		return nil
	})
}

// GetPendingRequests returns all pending access requests
func (s *jsonStorage) GetPendingRequests() ([]PendingRequest, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.PendingRequests, nil
}

// AddPendingRequest adds a new pending access request
func (s *jsonStorage) AddPendingRequest(req PendingRequest) error {
	return s.update(func(cfg *Config) error {
		for _, r := range cfg.PendingRequests {
			if r.UserID == req.UserID {
				return ErrPendingRequestExists
			}
		}
		cfg.PendingRequests = append(cfg.PendingRequests, req)
		return nil
	})
}

// RemovePendingRequest removes a pending access request
func (s *jsonStorage) RemovePendingRequest(userID int64) error {
	return s.update(func(cfg *Config) error {
		kept := make([]PendingRequest, 0, len(cfg.PendingRequests))
		for _, r := range cfg.PendingRequests {
			if r.UserID != userID {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(cfg.PendingRequests) {
			return ErrPendingRequestNotFound
		}
		cfg.PendingRequests = kept
		return nil
	})
}

// IsPendingRequest checks if a user has a pending access request
func (s *jsonStorage) IsPendingRequest(userID int64) (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	for _, r := range cfg.PendingRequests {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// GetAllowedUsers returns all allowed users with their scopes
func (s *jsonStorage) GetAllowedUsers() ([]AllowedUser, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.AllowedUsers, nil
}

// AddAllowedUser adds a user with a specific scope
func (s *jsonStorage) AddAllowedUser(userID int64, scope AccessScope) error {
	return s.update(func(cfg *Config) error {
		for i, u := range cfg.AllowedUsers {
			if u.UserID != userID {
				continue
			}
			for _, existing := range u.Scopes {
				if existing == scope {
					return nil
				}
			}
			cfg.AllowedUsers[i].Scopes = append(cfg.AllowedUsers[i].Scopes, scope)
			return nil
		}

		cfg.AllowedUsers = append(cfg.AllowedUsers, AllowedUser{
			UserID: userID,
			Scopes: []AccessScope{scope},
		})
		return nil
	})
}

// RemoveAllowedUser removes a user from allowed list
func (s *jsonStorage) RemoveAllowedUser(userID int64) error {
	return s.update(func(cfg *Config) error {
		kept := make([]AllowedUser, 0, len(cfg.AllowedUsers))
		for _, u := range cfg.AllowedUsers {
			if u.UserID != userID {
				kept = append(kept, u)
			}
		}
		cfg.AllowedUsers = kept
		return nil
	})
}

// IsUserAllowed checks if a user is allowed in a specific chat/thread
func (s *jsonStorage) IsUserAllowed(userID int64, chatID int64, threadID int) bool {
	cfg, err := s.Load()
	if err != nil {
		return false
	}

	for _, u := range cfg.AllowedUsers {
		if u.UserID != userID {
			continue
		}
		for _, scope := range u.Scopes {
			if scope.ChatID == chatID && scope.ThreadID == threadID {
				return true
			}
		}
		return false
	}
	return false
}
