package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DoH transport modes
const (
	DoHModeJSON = "json"
	DoHModeWire = "wire"
)

// RDAP bootstrap modes
const (
	BootstrapModeService = "service"
	BootstrapModeIANA    = "iana"
)

// WHOIS runner modes
const (
	WhoisModeExec   = "exec"
	WhoisModeNative = "native"
)

// Config holds all application configuration
type Config struct {
	// DNS-over-HTTPS
	DoHURL  string
	DoHMode string

	// RDAP
	RDAPBootstrapURL  string
	RDAPBootstrapMode string
	RDAPTimeout       time.Duration

	// WHOIS fallback
	WhoisMode    string
	WhoisBinary  string
	WhoisTimeout time.Duration

	// Outbound HTTP
	UserAgent     string
	FeedTimeout   time.Duration
	HTTPRetryMax  int
	HTTPRateLimit float64

	// MCP HTTP server
	MCPHTTPPort      string
	MCPAPIKeys       []string
	MCPManagementKey string

	// Telegram
	TelegramBotToken string
	AllowedUsers     []int64

	// Cloudflare portfolio (optional)
	CloudflareAPIToken string
	CloudflareAPIKey   string
	CloudflareEmail    string

	// Storage
	DataDir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		DoHURL:             getEnv("DOH_URL", "https://cloudflare-dns.com/dns-query"),
		DoHMode:            strings.ToLower(getEnv("DOH_MODE", DoHModeJSON)),
		RDAPBootstrapURL:   strings.TrimSuffix(getEnv("RDAP_BOOTSTRAP_URL", "https://rdap-bootstrap.arin.net/bootstrap/domain"), "/"),
		RDAPBootstrapMode:  strings.ToLower(getEnv("RDAP_BOOTSTRAP_MODE", BootstrapModeService)),
		WhoisMode:          strings.ToLower(getEnv("WHOIS_MODE", WhoisModeExec)),
		WhoisBinary:        getEnv("WHOIS_BINARY", "whois"),
		UserAgent:          getEnv("USER_AGENT", "Domain-MCP-Go/1.0"),
		MCPHTTPPort:        getEnv("MCP_HTTP_PORT", "8875"),
		MCPManagementKey:   getEnv("MCP_MANAGEMENT_KEY", ""),
		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		CloudflareAPIToken: getEnv("CLOUDFLARE_API_TOKEN", ""),
		CloudflareAPIKey:   getEnv("CLOUDFLARE_API_KEY", ""),
		CloudflareEmail:    getEnv("CLOUDFLARE_EMAIL", ""),
		DataDir:            getEnv("DATA_DIR", "./data"),
	}

	var err error
	if cfg.RDAPTimeout, err = getDuration("RDAP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.WhoisTimeout, err = getDuration("WHOIS_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.FeedTimeout, err = getDuration("FEED_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPRetryMax, err = getInt("HTTP_RETRY_MAX", 1); err != nil {
		return nil, err
	}
	if cfg.HTTPRateLimit, err = getFloat("HTTP_RATE_LIMIT", 0); err != nil {
		return nil, err
	}

	cfg.MCPAPIKeys = splitList(getEnv("MCP_API_KEY", ""))
	cfg.MCPAPIKeys = append(cfg.MCPAPIKeys, splitList(getEnv("MCP_API_KEYS", ""))...)

	// Parse allowed users
	for _, idStr := range splitList(getEnv("TELEGRAM_ALLOWED_USERS", "")) {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID in TELEGRAM_ALLOWED_USERS: %s", idStr)
		}
		cfg.AllowedUsers = append(cfg.AllowedUsers, id)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DoHURL == "" {
		return fmt.Errorf("DOH_URL is required")
	}

	switch c.DoHMode {
	case DoHModeJSON, DoHModeWire:
	default:
		return fmt.Errorf("DOH_MODE must be %q or %q, got %q", DoHModeJSON, DoHModeWire, c.DoHMode)
	}

	switch c.RDAPBootstrapMode {
	case BootstrapModeService, BootstrapModeIANA:
	default:
		return fmt.Errorf("RDAP_BOOTSTRAP_MODE must be %q or %q, got %q", BootstrapModeService, BootstrapModeIANA, c.RDAPBootstrapMode)
	}

	if c.RDAPBootstrapMode == BootstrapModeService && c.RDAPBootstrapURL == "" {
		return fmt.Errorf("RDAP_BOOTSTRAP_URL is required in %s bootstrap mode", BootstrapModeService)
	}

	switch c.WhoisMode {
	case WhoisModeExec, WhoisModeNative:
	default:
		return fmt.Errorf("WHOIS_MODE must be %q or %q, got %q", WhoisModeExec, WhoisModeNative, c.WhoisMode)
	}

	if c.HTTPRetryMax < 0 {
		return fmt.Errorf("HTTP_RETRY_MAX must not be negative")
	}

	if c.HTTPRateLimit < 0 {
		return fmt.Errorf("HTTP_RATE_LIMIT must not be negative")
	}

	if c.CloudflareAPIToken == "" && (c.CloudflareAPIKey == "") != (c.CloudflareEmail == "") {
		return fmt.Errorf("CLOUDFLARE_API_KEY and CLOUDFLARE_EMAIL must be set together")
	}

	return nil
}

// ValidateBot checks the settings only the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	return nil
}

// PortfolioEnabled returns true if Cloudflare credentials are configured
func (c *Config) PortfolioEnabled() bool {
	return c.UseAPIToken() || (c.CloudflareAPIKey != "" && c.CloudflareEmail != "")
}

// UseAPIToken returns true if API token should be used
func (c *Config) UseAPIToken() bool {
	return c.CloudflareAPIToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %s", key, v)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer in %s: %s", key, v)
	}
	return n, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in %s: %s", key, v)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
