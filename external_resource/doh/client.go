package doh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const jsonMediaType = "application/dns-json"

// jsonClient implements Client against a JSON DoH API (Cloudflare/Google dialect)
type jsonClient struct {
	http     *http.Client
	endpoint string
}

// NewJSONClient creates a DoH client that requests application/dns-json answers
func NewJSONClient(httpClient *http.Client, endpoint string) Client {
	return &jsonClient{
		http:     httpClient,
		endpoint: endpoint,
	}
}

type jsonResponse struct {
	Status int          `json:"Status"`
	Answer []jsonAnswer `json:"Answer"`
}

type jsonAnswer struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

// Query resolves one record type for a name
func (c *jsonClient) Query(ctx context.Context, name, recordType string) ([]Answer, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse doh endpoint: %w", err)
	}
	q := u.Query()
	q.Set("name", name)
	q.Set("type", recordType)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build doh request: %w", err)
	}
	req.Header.Set("Accept", jsonMediaType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %s: %w", recordType, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("doh query %s %s returned status %d", recordType, name, resp.StatusCode)
	}

	var body jsonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode doh response: %w", err)
	}

	answers := make([]Answer, 0, len(body.Answer))
	for _, a := range body.Answer {
		answers = append(answers, Answer{Data: a.Data, TTL: a.TTL})
	}
	return answers, nil
}
