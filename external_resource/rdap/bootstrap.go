package rdap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/openrdap/rdap/bootstrap"
	"github.com/openrdap/rdap/bootstrap/cache"
)

// serviceDiscoverer asks a bootstrap service about a single domain
type serviceDiscoverer struct {
	http    *http.Client
	baseURL string
}

// NewServiceDiscoverer creates a discoverer that queries {baseURL}/{domain}
// and reads the RFC 9224 services list from the response
func NewServiceDiscoverer(httpClient *http.Client, baseURL string) Discoverer {
	return &serviceDiscoverer{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type serviceList struct {
	Services [][][]string `json:"services"`
}

// Discover returns the first URL of the first service entry
func (d *serviceDiscoverer) Discover(ctx context.Context, domain string) (string, error) {
	endpoint := d.baseURL + "/" + url.PathEscape(domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build bootstrap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query bootstrap %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("bootstrap %s returned status %d", endpoint, resp.StatusCode)
	}

	var list serviceList
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode bootstrap response: %w", err)
	}

	if len(list.Services) > 0 {
		service := list.Services[0]
		if len(service) > 0 {
			urls := service[len(service)-1]
			if len(urls) > 0 && urls[0] != "" {
				return urls[0], nil
			}
		}
	}

	// Redirecting bootstrap services land on the authoritative server itself.
	if base, ok := redirectedBase(resp.Request, domain, endpoint); ok {
		return base, nil
	}

	return "", fmt.Errorf("%w: bootstrap has no service for %s", ErrNoServer, domain)
}

// redirectedBase derives {base} from a final URL of the form {base}/domain/{name}
func redirectedBase(final *http.Request, domain, requested string) (string, bool) {
	if final == nil || final.URL == nil || final.URL.String() == requested {
		return "", false
	}
	suffix := "/domain/" + domain
	path := strings.TrimSuffix(final.URL.Path, "/")
	if !strings.HasSuffix(strings.ToLower(path), suffix) {
		return "", false
	}
	u := *final.URL
	u.Path = path[:len(path)-len(suffix)]
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), true
}

// ianaDiscoverer resolves servers from the IANA dns.json registry
type ianaDiscoverer struct {
	client *bootstrap.Client
}

// NewIANADiscoverer creates a discoverer backed by the IANA bootstrap registry.
// The registry file is fetched once and cached in memory.
func NewIANADiscoverer(httpClient *http.Client, baseURL *url.URL) Discoverer {
	b := &bootstrap.Client{
		HTTP:  httpClient,
		Cache: cache.NewMemoryCache(),
	}
	if baseURL != nil {
		b.BaseURL = baseURL
	}
	return &ianaDiscoverer{client: b}
}

// Discover returns the first server URL the registry lists for the domain's TLD
func (d *ianaDiscoverer) Discover(ctx context.Context, domain string) (string, error) {
	question := &bootstrap.Question{
		RegistryType: bootstrap.DNS,
		Query:        domain,
	}

	answer, err := d.client.Lookup(question.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to bootstrap %s: %w", domain, err)
	}
	if answer == nil || len(answer.URLs) == 0 {
		return "", fmt.Errorf("%w: iana registry has no service for %s", ErrNoServer, domain)
	}
	return answer.URLs[0].String(), nil
}
