package repository

import (
	"context"

	"domain-mcp/internal/domain"
)

// DNSRepository resolves public DNS data for a domain
type DNSRepository interface {
	// Lookup resolves every record type. Individual query failures degrade to
	// empty lists; an error is returned only when all queries failed, together
	// with the empty result.
	Lookup(ctx context.Context, name string) (*domain.DNSLookupResult, error)

	// Records returns the same answers as a flat list with TTLs
	Records(ctx context.Context, name string) ([]domain.DNSRecord, error)
}

// WhoisRepository produces one registration record per lookup
type WhoisRepository interface {
	// Lookup walks RDAP, then command-line WHOIS, then the unknown record.
	// Only context cancellation is returned as an error.
	Lookup(ctx context.Context, name string) (*domain.WhoisRecord, error)
}

// ExpiredRepository aggregates expired and pending-delete feeds
type ExpiredRepository interface {
	Search(ctx context.Context, search domain.ExpiredSearch) ([]domain.ExpiredDomain, error)
}

// ZoneRepository defines the interface for zone operations
type ZoneRepository interface {
	// ListZones returns all accessible zones
	ListZones(ctx context.Context) ([]domain.Zone, error)

	// GetZoneByName returns a zone by its name
	GetZoneByName(ctx context.Context, name string) (*domain.Zone, error)
}
