package doh

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/miekg/dns"
)

const wireMediaType = "application/dns-message"

// maxWireResponse bounds the size of a DNS message read from the endpoint
const maxWireResponse = 64 * 1024

// wireClient implements Client with RFC 8484 wire-format messages
type wireClient struct {
	http     *http.Client
	endpoint string
}

// NewWireClient creates a DoH client that exchanges application/dns-message bodies
func NewWireClient(httpClient *http.Client, endpoint string) Client {
	return &wireClient{
		http:     httpClient,
		endpoint: endpoint,
	}
}

// Query resolves one record type for a name. Answers are rendered in
// presentation format so they match the JSON dialect's data field.
func (c *wireClient) Query(ctx context.Context, name, recordType string) ([]Answer, error) {
	qtype, ok := dns.StringToType[strings.ToUpper(recordType)]
	if !ok {
		return nil, fmt.Errorf("unsupported record type %s", recordType)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.Id = 0
	packed, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("failed to pack dns query: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse doh endpoint: %w", err)
	}
	q := u.Query()
	q.Set("dns", base64.RawURLEncoding.EncodeToString(packed))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build doh request: %w", err)
	}
	req.Header.Set("Accept", wireMediaType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %s: %w", recordType, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("doh query %s %s returned status %d", recordType, name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWireResponse))
	if err != nil {
		return nil, fmt.Errorf("failed to read doh response: %w", err)
	}

	reply := new(dns.Msg)
	if err := reply.Unpack(body); err != nil {
		return nil, fmt.Errorf("failed to unpack doh response: %w", err)
	}

	answers := make([]Answer, 0, len(reply.Answer))
	for _, rr := range reply.Answer {
		hdr := rr.Header()
		answers = append(answers, Answer{
			Data: strings.TrimPrefix(rr.String(), hdr.String()),
			TTL:  hdr.Ttl,
		})
	}
	return answers, nil
}
