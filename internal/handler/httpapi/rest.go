package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"domain-mcp/internal/domain"
	"domain-mcp/pkg/storage"
)

// maxBulkDomains bounds one /api/bulk request
const maxBulkDomains = 100

// errorStatus maps use case errors onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDomain):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPortfolioDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrZoneNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCertificateUnavailable), errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, r *http.Request, data interface{}, err error) {
	if err != nil {
		log.Printf("[HTTPAPI] %s ERROR: %v", r.URL.Path, err)
		writeError(w, errorStatus(err), err.Error())
		return
	}
	writeSuccess(w, data)
}

// domainParam reads the required ?domain= query parameter
func domainParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := strings.TrimSpace(r.URL.Query().Get("domain"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "Missing 'domain' query parameter")
		return "", false
	}
	return name, true
}

// handleWhois handles GET /api/whois?domain=example.com
func (s *Server) handleWhois(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	record, err := s.domainUsecase.WhoisLookup(r.Context(), name)
	respond(w, r, record, err)
}

// handleDNS handles GET /api/dns?domain=example.com
func (s *Server) handleDNS(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	result, err := s.domainUsecase.DNSLookup(r.Context(), name)
	respond(w, r, result, err)
}

// handleRecords handles GET /api/records?domain=example.com
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	records, err := s.domainUsecase.DNSRecords(r.Context(), name)
	respond(w, r, records, err)
}

// handleAvailability handles GET /api/availability?domain=example.com
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	verdict, err := s.domainUsecase.CheckAvailability(r.Context(), name)
	respond(w, r, verdict, err)
}

// handleAge handles GET /api/age?domain=example.com
func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	age, err := s.domainUsecase.CheckAge(r.Context(), name)
	respond(w, r, age, err)
}

// handleSSL handles GET /api/ssl?domain=example.com
func (s *Server) handleSSL(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	info, err := s.domainUsecase.CertificateInfo(r.Context(), name)
	respond(w, r, info, err)
}

// handleBulk handles POST /api/bulk {"domains": [...]}
func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Domains []string `json:"domains"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if len(req.Domains) > maxBulkDomains {
		writeError(w, http.StatusRequestEntityTooLarge, "Too many domains in one request")
		return
	}
	result, err := s.domainUsecase.BulkCheck(r.Context(), req.Domains)
	respond(w, r, result, err)
}

// handleExpired handles GET /api/expired?keyword=shop&tld=com
func (s *Server) handleExpired(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := s.domainUsecase.SearchExpired(r.Context(), q.Get("keyword"), q.Get("tld"))
	respond(w, r, results, err)
}

// handlePortfolio handles GET /api/portfolio
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	zones, err := s.portfolio.ListZones(r.Context())
	respond(w, r, zones, err)
}

// handlePortfolioCheck handles GET /api/portfolio/check
func (s *Server) handlePortfolioCheck(w http.ResponseWriter, r *http.Request) {
	entries, err := s.portfolio.CheckPortfolio(r.Context())
	respond(w, r, entries, err)
}

// handlePortfolioZone handles GET /api/portfolio/zone?domain=example.com
func (s *Server) handlePortfolioZone(w http.ResponseWriter, r *http.Request) {
	name, ok := domainParam(w, r)
	if !ok {
		return
	}
	entry, err := s.portfolio.CheckZone(r.Context(), name)
	respond(w, r, entry, err)
}

// keyView is the listing form of a key; the secret is masked
type keyView struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Source  string `json:"source"`
	Created string `json:"created_at,omitempty"`
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8] + "****"
}

// handleListKeys handles GET /admin/keys (management only)
func (s *Server) handleListKeys(w http.ResponseWriter, r *http.Request) {
	views := make([]keyView, 0, len(s.envKeys))
	for _, k := range s.envKeys {
		views = append(views, keyView{Key: maskKey(k), Name: "env", Source: "env"})
	}
	if s.keys != nil {
		stored, err := s.keys.GetAPIKeys()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, k := range stored {
			views = append(views, keyView{
				Key:     maskKey(k.Key),
				Name:    k.Name,
				Source:  "storage",
				Created: k.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
	}
	writeSuccess(w, views)
}

// handleGenerateKey handles POST /admin/keys/generate (management only)
func (s *Server) handleGenerateKey(w http.ResponseWriter, r *http.Request) {
	if s.keys == nil {
		writeError(w, http.StatusServiceUnavailable, "Key storage is not configured")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	// an empty body falls back to the default name
	_ = json.NewDecoder(r.Body).Decode(&req)

	key, err := s.keys.GenerateAPIKey(req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[HTTPAPI] generated API key name=%s", key.Name)
	writeSuccess(w, map[string]string{
		"key":  key.Key,
		"name": key.Name,
	})
}

// handleRevokeKey handles DELETE /admin/keys/{key} (management only)
func (s *Server) handleRevokeKey(w http.ResponseWriter, r *http.Request) {
	if s.keys == nil {
		writeError(w, http.StatusServiceUnavailable, "Key storage is not configured")
		return
	}

	err := s.keys.RemoveAPIKey(chi.URLParam(r, "key"))
	if errors.Is(err, storage.ErrAPIKeyNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w, map[string]string{"message": "API key revoked"})
}
