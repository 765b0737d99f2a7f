package usecase

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"domain-mcp/internal/domain"
	"domain-mcp/internal/repository"
)

// maxPortfolioChecks bounds concurrent zone checks against upstream registries
const maxPortfolioChecks = 8

// portfolioUsecase implements PortfolioUsecase interface
type portfolioUsecase struct {
	zoneRepo  repository.ZoneRepository
	whoisRepo repository.WhoisRepository
	dnsRepo   repository.DNSRepository
}

// NewPortfolioUsecase creates a new portfolio usecase. zoneRepo may be nil
// when no Cloudflare credentials are configured.
func NewPortfolioUsecase(
	zoneRepo repository.ZoneRepository,
	whoisRepo repository.WhoisRepository,
	dnsRepo repository.DNSRepository,
) PortfolioUsecase {
	return &portfolioUsecase{
		zoneRepo:  zoneRepo,
		whoisRepo: whoisRepo,
		dnsRepo:   dnsRepo,
	}
}

// ListZones returns all accessible zones
func (u *portfolioUsecase) ListZones(ctx context.Context) ([]domain.Zone, error) {
	if u.zoneRepo == nil {
		return nil, domain.ErrPortfolioDisabled
	}
	zones, err := u.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

// CheckPortfolio runs an availability check per zone and reports registration expiry
func (u *portfolioUsecase) CheckPortfolio(ctx context.Context) ([]domain.PortfolioEntry, error) {
	log.Printf("[CheckPortfolio] START")
	zones, err := u.ListZones(ctx)
	if err != nil {
		log.Printf("[CheckPortfolio] ERROR: %v", err)
		return nil, err
	}

	entries := make([]domain.PortfolioEntry, len(zones))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPortfolioChecks)
	for i, zone := range zones {
		g.Go(func() error {
			entries[i] = u.checkZone(gctx, zone)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[CheckPortfolio] ERROR: %v", err)
		return nil, err
	}
	log.Printf("[CheckPortfolio] SUCCESS zones=%d", len(entries))
	return entries, nil
}

// CheckZone checks a single zone of the account by name
func (u *portfolioUsecase) CheckZone(ctx context.Context, name string) (*domain.PortfolioEntry, error) {
	if u.zoneRepo == nil {
		return nil, domain.ErrPortfolioDisabled
	}
	name = domain.Normalize(name)
	if name == "" {
		return nil, domain.ErrInvalidDomain
	}

	zone, err := u.zoneRepo.GetZoneByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	entry := u.checkZone(ctx, *zone)
	return &entry, nil
}

// checkZone runs WHOIS and DNS for one zone concurrently and fuses them
func (u *portfolioUsecase) checkZone(ctx context.Context, zone domain.Zone) domain.PortfolioEntry {
	name := domain.Normalize(zone.Name)

	var (
		record   *domain.WhoisRecord
		whoisErr error
		lookup   *domain.DNSLookupResult
		dnsErr   error
	)
	var g errgroup.Group
	g.Go(func() error {
		record, whoisErr = u.whoisRepo.Lookup(ctx, name)
		return nil
	})
	g.Go(func() error {
		lookup, dnsErr = u.dnsRepo.Lookup(ctx, name)
		return nil
	})
	_ = g.Wait()

	if whoisErr != nil {
		record = nil
	}
	if dnsErr != nil {
		lookup = nil
	}

	entry := domain.PortfolioEntry{
		Zone:         zone,
		Availability: *Decide(name, record, lookup),
	}
	if record != nil {
		entry.ExpiryDate = record.ExpiryDate
		entry.Registrar = record.Registrar
	}
	return entry
}
