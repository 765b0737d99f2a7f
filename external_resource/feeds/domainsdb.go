package feeds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DomainsDBURL is the DomainsDB search endpoint
const DomainsDBURL = "https://api.domainsdb.info/v1/domains/search"

const domainsDBPageSize = 50

type domainsDB struct {
	http     *http.Client
	endpoint string
}

// NewDomainsDB creates the DomainsDB registry snapshot source
func NewDomainsDB(httpClient *http.Client, endpoint string) Source {
	if endpoint == "" {
		endpoint = DomainsDBURL
	}
	return &domainsDB{
		http:     httpClient,
		endpoint: endpoint,
	}
}

func (s *domainsDB) Name() string {
	return "DomainsDB"
}

type domainsDBResponse struct {
	Domains []domainsDBEntry `json:"domains"`
}

type domainsDBEntry struct {
	Domain     string          `json:"domain"`
	CreateDate string          `json:"create_date"`
	UpdateDate string          `json:"update_date"`
	IsDead     json.RawMessage `json:"isDead"`
	A          json.RawMessage `json:"A"`
	NS         json.RawMessage `json:"NS"`
}

// Fetch asks the API for dead domains and filters them again locally
func (s *domainsDB) Fetch(ctx context.Context, query Query) ([]Listing, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse domainsdb endpoint: %w", err)
	}
	params := u.Query()
	params.Set("isDead", "true")
	params.Set("limit", strconv.Itoa(domainsDBPageSize))
	if query.Keyword != "" {
		params.Set("domain", query.Keyword)
	}
	if query.TLD != "" {
		params.Set("zone", query.TLD)
	}
	u.RawQuery = params.Encode()

	body, err := download(ctx, s.http, s.Name(), u.String(), "")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp domainsDBResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode domainsdb response: %w", err)
	}

	limit := query.limit()
	listings := make([]Listing, 0, limit)
	for _, entry := range resp.Domains {
		if !query.Matches(entry.Domain) {
			continue
		}

		hasDNS := present(entry.A) || present(entry.NS)
		status := StatusUnknown
		if isTrueString(entry.IsDead) {
			status = StatusExpired
		}

		listings = append(listings, Listing{
			Domain:  entry.Domain,
			Status:  status,
			Source:  s.Name(),
			Created: entry.CreateDate,
			Updated: entry.UpdateDate,
			HasDNS:  &hasDNS,
		})
		if len(listings) >= limit {
			break
		}
	}
	return listings, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// isTrueString matches only the literal JSON string "True"
func isTrueString(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s == "True"
}
