package tlsinspect

import (
	"context"
	"time"
)

// Inspector reads the leaf certificate a host presents
type Inspector interface {
	Inspect(ctx context.Context, domain string) (*Certificate, error)
}

// Certificate is the leaf certificate as presented during the handshake
type Certificate struct {
	Issuer             string
	Subject            string
	SerialNumber       string
	NotBefore          time.Time
	NotAfter           time.Time
	SignatureAlgorithm string
	DNSNames           []string
	// HostnameVerified is true when the certificate covers the requested name
	HostnameVerified bool
}
