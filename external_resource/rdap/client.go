package rdap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

const (
	rdapMediaType   = "application/rdap+json"
	maxResponseSize = 4 << 20
)

// client implements Client
type client struct {
	http       *http.Client
	directory  *Directory
	discoverer Discoverer
}

// NewClient creates an RDAP client backed by a static directory and a bootstrap discoverer
func NewClient(httpClient *http.Client, directory *Directory, discoverer Discoverer) Client {
	if directory == nil {
		directory = DefaultDirectory()
	}
	return &client{
		http:       httpClient,
		directory:  directory,
		discoverer: discoverer,
	}
}

// Lookup fetches the RDAP domain object for a normalized domain name
func (c *client) Lookup(ctx context.Context, domain string) (*Domain, error) {
	var staticErr error
	if base, ok := c.directory.Lookup(lastLabel(domain)); ok {
		doc, err := c.fetch(ctx, base, domain)
		if err == nil {
			return doc, nil
		}
		log.Printf("[RDAP] Lookup static server failed domain=%s server=%s error=%v", domain, base, err)
		staticErr = err
	}

	if c.discoverer == nil {
		if staticErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrLookupFailed, staticErr)
		}
		return nil, fmt.Errorf("%w: %w for %s", ErrLookupFailed, ErrNoServer, domain)
	}

	base, err := c.discoverer.Discover(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("%w: bootstrap: %w", ErrLookupFailed, err)
	}

	doc, err := c.fetch(ctx, base, domain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	return doc, nil
}

func (c *client) fetch(ctx context.Context, base, domain string) (*Domain, error) {
	endpoint := strings.TrimSuffix(base, "/") + "/domain/" + url.PathEscape(domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rdap request: %w", err)
	}
	req.Header.Set("Accept", rdapMediaType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read rdap response: %w", err)
	}

	var doc Domain
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rdap response: %w", err)
	}
	doc.Raw = json.RawMessage(body)
	doc.Server = base
	return &doc, nil
}

func lastLabel(domain string) string {
	if i := strings.LastIndex(domain, "."); i >= 0 {
		return domain[i+1:]
	}
	return domain
}
