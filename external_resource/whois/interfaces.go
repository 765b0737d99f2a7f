package whois

import "context"

// Runner fetches the raw WHOIS text for a domain
type Runner interface {
	Run(ctx context.Context, domain string) (string, error)
	// Name identifies the runner in logs and metrics
	Name() string
}
