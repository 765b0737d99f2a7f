package tlsinspect

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

const defaultPort = "443"

type inspector struct {
	timeout time.Duration
	address func(domain string) string
}

// NewInspector creates an inspector that handshakes with domain:443
func NewInspector(timeout time.Duration) Inspector {
	return &inspector{
		timeout: timeout,
		address: func(domain string) string {
			return net.JoinHostPort(domain, defaultPort)
		},
	}
}

// Inspect completes a TLS handshake using SNI and returns the leaf certificate.
// Chain verification is skipped so expired or self-signed certificates can be reported.
func (i *inspector) Inspect(ctx context.Context, domain string) (*Certificate, error) {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: i.timeout},
		Config: &tls.Config{
			ServerName:         domain,
			InsecureSkipVerify: true,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", i.address(domain))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", domain, err)
	}
	defer conn.Close()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		return nil, fmt.Errorf("unexpected connection type %T", conn)
	}

	state := tlsConn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("no certificate presented by %s", domain)
	}

	leaf := state.PeerCertificates[0]
	return &Certificate{
		Issuer:             leaf.Issuer.String(),
		Subject:            leaf.Subject.String(),
		SerialNumber:       leaf.SerialNumber.String(),
		NotBefore:          leaf.NotBefore,
		NotAfter:           leaf.NotAfter,
		SignatureAlgorithm: leaf.SignatureAlgorithm.String(),
		DNSNames:           append([]string{}, leaf.DNSNames...),
		HostnameVerified:   leaf.VerifyHostname(domain) == nil,
	}, nil
}
