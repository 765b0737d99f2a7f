// Package httpapi serves the MCP JSON-RPC endpoint, a REST view of the
// same operations, health, metrics and API key management over chi.
package httpapi

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"domain-mcp/internal/handler/mcptools"
	"domain-mcp/internal/usecase"
	"domain-mcp/pkg/storage"
)

// requestTimeout bounds one request. Bulk checks and portfolio checks
// fan out to many upstreams, so it is generous.
const requestTimeout = 2 * time.Minute

const managementKeyName = "management"

type ctxKey struct{}

// Caller identifies the API key that authenticated a request
type Caller struct {
	Name       string
	Management bool
}

// CallerFromContext returns the authenticated caller, if any
func CallerFromContext(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(ctxKey{}).(Caller)
	return c, ok
}

// Options configures a Server
type Options struct {
	// EnvKeys are API keys taken from the environment
	EnvKeys []string
	// ManagementKey unlocks /admin routes. Empty disables them.
	ManagementKey string
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP front end
type Server struct {
	tools         *mcptools.Registry
	domainUsecase usecase.DomainUsecase
	portfolio     usecase.PortfolioUsecase
	keys          storage.APIKeyStorage
	envKeys       []string
	managementKey string
	gatherer      prometheus.Gatherer
}

// NewServer creates a new HTTP server. keys may be nil when only
// environment keys are used.
func NewServer(
	tools *mcptools.Registry,
	domainUsecase usecase.DomainUsecase,
	portfolio usecase.PortfolioUsecase,
	keys storage.APIKeyStorage,
	opts Options,
) *Server {
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Server{
		tools:         tools,
		domainUsecase: domainUsecase,
		portfolio:     portfolio,
		keys:          keys,
		envKeys:       opts.EnvKeys,
		managementKey: opts.ManagementKey,
		gatherer:      gatherer,
	}
}

// Router builds the chi router with every route mounted
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(s.rpcAuth)
		r.HandleFunc("/", s.handleRPC)
		r.HandleFunc("/mcp", s.handleRPC)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.restAuth)
		r.Get("/whois", s.handleWhois)
		r.Get("/dns", s.handleDNS)
		r.Get("/records", s.handleRecords)
		r.Get("/availability", s.handleAvailability)
		r.Get("/age", s.handleAge)
		r.Get("/ssl", s.handleSSL)
		r.Post("/bulk", s.handleBulk)
		r.Get("/expired", s.handleExpired)
		r.Get("/portfolio", s.handlePortfolio)
		r.Get("/portfolio/check", s.handlePortfolioCheck)
		r.Get("/portfolio/zone", s.handlePortfolioZone)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.restAuth)
		r.Use(requireManagement)
		r.Get("/keys", s.handleListKeys)
		r.Post("/keys/generate", s.handleGenerateKey)
		r.Delete("/keys/{key}", s.handleRevokeKey)
	})

	return r
}

// authRequired is false only when no key of any kind is configured
func (s *Server) authRequired() bool {
	if s.managementKey != "" || len(s.envKeys) > 0 {
		return true
	}
	if s.keys == nil {
		return false
	}
	keys, err := s.keys.GetAPIKeys()
	return err != nil || len(keys) > 0
}

// authenticate resolves a bearer token to a caller
func (s *Server) authenticate(r *http.Request) (Caller, string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Caller{}, "Missing Authorization header"
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return Caller{}, "Invalid Authorization format. Use: Bearer <token>"
	}

	token := strings.TrimSpace(parts[1])
	if s.managementKey != "" && constantTimeEqual(token, s.managementKey) {
		return Caller{Name: managementKeyName, Management: true}, ""
	}
	if matchAny(s.envKeys, token) {
		return Caller{Name: "env"}, ""
	}
	if s.keys != nil && s.keys.IsValidAPIKey(token) {
		return Caller{Name: "stored"}, ""
	}
	return Caller{}, "Invalid API key"
}

func (s *Server) rpcAuth(next http.Handler) http.Handler {
	return s.auth(next, func(w http.ResponseWriter, message string) {
		writeRPCError(w, http.StatusUnauthorized, nil, codeUnauthorized, message)
	})
}

func (s *Server) restAuth(next http.Handler) http.Handler {
	return s.auth(next, func(w http.ResponseWriter, message string) {
		writeError(w, http.StatusUnauthorized, message)
	})
}

func (s *Server) auth(next http.Handler, reject func(w http.ResponseWriter, message string)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.authRequired() {
			next.ServeHTTP(w, r)
			return
		}
		caller, problem := s.authenticate(r)
		if problem != "" {
			log.Printf("[HTTPAPI] auth rejected %s %s: %s", r.Method, r.URL.Path, problem)
			reject(w, problem)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok || !caller.Management {
			writeError(w, http.StatusForbidden, "Management key required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func matchAny(keys []string, token string) bool {
	found := false
	for _, k := range keys {
		if constantTimeEqual(k, token) {
			found = true
		}
	}
	return found
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"status":  "ok",
		"service": mcptools.ServerName,
		"version": mcptools.ServerVersion,
	})
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// writeSuccess writes a success response
func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}
