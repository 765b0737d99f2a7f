package whois

import (
	"context"
	"fmt"
	"time"

	"github.com/likexian/whois"
)

// nativeRunner speaks the port 43 protocol in process
type nativeRunner struct {
	client *whois.Client
}

// NewNativeRunner creates a runner backed by an in-process WHOIS client
func NewNativeRunner(timeout time.Duration) Runner {
	client := whois.NewClient()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &nativeRunner{client: client}
}

func (r *nativeRunner) Name() string {
	return "native"
}

func (r *nativeRunner) Run(ctx context.Context, domain string) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		text, err := r.client.Whois(domain)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("whois %s cancelled: %w", domain, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("failed to query whois for %s: %w", domain, res.err)
		}
		return res.text, nil
	}
}
