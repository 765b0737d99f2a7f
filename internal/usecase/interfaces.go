package usecase

import (
	"context"

	"domain-mcp/internal/domain"
)

// DomainUsecase defines the domain metadata use cases.
// This interface is handler-agnostic and can be used by MCP tools, REST API, Telegram bot or the CLI.
// Every method normalizes its domain input first.
type DomainUsecase interface {
	// Registration data
	WhoisLookup(ctx context.Context, name string) (*domain.WhoisRecord, error)
	CheckAge(ctx context.Context, name string) (*domain.DomainAge, error)

	// Public DNS
	DNSLookup(ctx context.Context, name string) (*domain.DNSLookupResult, error)
	DNSRecords(ctx context.Context, name string) ([]domain.DNSRecord, error)

	// Availability
	CheckAvailability(ctx context.Context, name string) (*domain.AvailabilityVerdict, error)
	BulkCheck(ctx context.Context, names []string) (*domain.BulkCheckResult, error)

	// Market and TLS
	SearchExpired(ctx context.Context, keyword, tld string) ([]domain.ExpiredDomain, error)
	CertificateInfo(ctx context.Context, name string) (*domain.CertificateInfo, error)
}

// PortfolioUsecase reports on the domains held in the operator's Cloudflare account
type PortfolioUsecase interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
	CheckPortfolio(ctx context.Context) ([]domain.PortfolioEntry, error)
	CheckZone(ctx context.Context, name string) (*domain.PortfolioEntry, error)
}
