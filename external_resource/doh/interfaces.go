package doh

import "context"

// Client defines a DNS-over-HTTPS resolver
type Client interface {
	// Query resolves one record type for a name. A non-success status,
	// transport error or undecodable body is returned as an error.
	Query(ctx context.Context, name, recordType string) ([]Answer, error)
}

// Answer is one answer line in presentation format
type Answer struct {
	Data string
	TTL  uint32
}
