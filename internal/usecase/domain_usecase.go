package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"domain-mcp/external_resource/tlsinspect"
	"domain-mcp/internal/domain"
	"domain-mcp/internal/metrics"
	"domain-mcp/internal/repository"
)

// domainUsecase implements DomainUsecase interface
type domainUsecase struct {
	whoisRepo   repository.WhoisRepository
	dnsRepo     repository.DNSRepository
	expiredRepo repository.ExpiredRepository
	inspector   tlsinspect.Inspector
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewDomainUsecase creates a new domain usecase
func NewDomainUsecase(
	whoisRepo repository.WhoisRepository,
	dnsRepo repository.DNSRepository,
	expiredRepo repository.ExpiredRepository,
	inspector tlsinspect.Inspector,
	m *metrics.Metrics,
) DomainUsecase {
	return &domainUsecase{
		whoisRepo:   whoisRepo,
		dnsRepo:     dnsRepo,
		expiredRepo: expiredRepo,
		inspector:   inspector,
		metrics:     m,
		now:         time.Now,
	}
}

func normalize(raw string) (string, error) {
	name := domain.Normalize(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDomain, raw)
	}
	return name, nil
}

// WhoisLookup returns the registration record from the first source that answers
func (u *domainUsecase) WhoisLookup(ctx context.Context, raw string) (*domain.WhoisRecord, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	return u.whoisRepo.Lookup(ctx, name)
}

// DNSLookup returns the record set; source failures degrade to empty lists
func (u *domainUsecase) DNSLookup(ctx context.Context, raw string) (*domain.DNSLookupResult, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	result, err := u.dnsRepo.Lookup(ctx, name)
	if err != nil && result == nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	if err != nil {
		log.Printf("[DNSLookup] degraded result for %s: %v", name, err)
	}
	return result, nil
}

// DNSRecords returns the flat record list with TTLs
func (u *domainUsecase) DNSRecords(ctx context.Context, raw string) ([]domain.DNSRecord, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	records, err := u.dnsRepo.Records(ctx, name)
	if err != nil && records == nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	if err != nil {
		log.Printf("[DNSRecords] degraded result for %s: %v", name, err)
	}
	return records, nil
}

// SearchExpired aggregates the expired domain feeds
func (u *domainUsecase) SearchExpired(ctx context.Context, keyword, tld string) ([]domain.ExpiredDomain, error) {
	search := domain.ExpiredSearch{
		Keyword: strings.TrimSpace(keyword),
		TLD:     strings.TrimPrefix(strings.TrimSpace(tld), "."),
	}
	return u.expiredRepo.Search(ctx, search)
}

// CertificateInfo inspects the certificate served on port 443
func (u *domainUsecase) CertificateInfo(ctx context.Context, raw string) (*domain.CertificateInfo, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	log.Printf("[CertificateInfo] START domain=%s", name)
	cert, err := u.inspector.Inspect(ctx, name)
	if err != nil {
		log.Printf("[CertificateInfo] ERROR: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCertificateUnavailable, err)
	}

	now := u.now()
	days := int64(cert.NotAfter.Sub(now).Hours() / 24)
	info := &domain.CertificateInfo{
		Domain:             name,
		Issuer:             cert.Issuer,
		Subject:            cert.Subject,
		SerialNumber:       cert.SerialNumber,
		NotBefore:          cert.NotBefore.UTC().Format(time.RFC3339),
		NotAfter:           cert.NotAfter.UTC().Format(time.RFC3339),
		SignatureAlgorithm: cert.SignatureAlgorithm,
		SANDomains:         cert.DNSNames,
		IsValid:            cert.HostnameVerified && !now.Before(cert.NotBefore) && now.Before(cert.NotAfter),
		DaysUntilExpiry:    &days,
	}
	if info.SANDomains == nil {
		info.SANDomains = []string{}
	}
	log.Printf("[CertificateInfo] SUCCESS domain=%s valid=%t days=%d", name, info.IsValid, days)
	return info, nil
}
