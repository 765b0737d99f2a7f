package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"domain-mcp/internal/domain"
)

// CheckAvailability runs the WHOIS chain and DNS resolver concurrently and fuses the results
func (u *domainUsecase) CheckAvailability(ctx context.Context, raw string) (*domain.AvailabilityVerdict, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	verdict, err := u.checkNormalized(ctx, name)
	if err != nil {
		return nil, err
	}
	u.metrics.IncAvailability(verdict.Available)
	return verdict, nil
}

func (u *domainUsecase) checkNormalized(ctx context.Context, name string) (*domain.AvailabilityVerdict, error) {
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

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if whoisErr != nil {
		record = nil
	}
	if dnsErr != nil {
		lookup = nil
	}
	return Decide(name, record, lookup), nil
}

// Decide fuses the WHOIS and DNS signals into a verdict. A nil record or
// lookup means that sub-query failed and counts as available; when both
// failed the sub-signals are left out.
func Decide(name string, record *domain.WhoisRecord, lookup *domain.DNSLookupResult) *domain.AvailabilityVerdict {
	whoisAvailable := true
	if record != nil {
		whoisAvailable = hasNotFoundMarker(record.RawData) || record.Registrar == ""
	}

	dnsAvailable := true
	if lookup != nil {
		dnsAvailable = !lookup.HasAddressOrDelegation()
	}

	verdict := &domain.AvailabilityVerdict{
		Domain:    name,
		Available: whoisAvailable || dnsAvailable,
		Reason:    reason(whoisAvailable, dnsAvailable),
	}
	if record != nil || lookup != nil {
		verdict.WhoisAvailable = &whoisAvailable
		verdict.DNSAvailable = &dnsAvailable
	}
	return verdict
}

func hasNotFoundMarker(raw string) bool {
	for _, marker := range domain.NotFoundMarkers {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

func reason(whoisAvailable, dnsAvailable bool) string {
	switch {
	case whoisAvailable && dnsAvailable:
		return domain.ReasonNoRecords
	case whoisAvailable:
		return domain.ReasonNoWhois
	case dnsAvailable:
		return domain.ReasonNoDNS
	default:
		return domain.ReasonRegistered
	}
}

// BulkCheck checks every entry concurrently. Duplicates are checked
// independently and a failed check becomes an error placeholder.
func (u *domainUsecase) BulkCheck(ctx context.Context, names []string) (*domain.BulkCheckResult, error) {
	u.metrics.ObserveBulkBatch(len(names))
	return bulkCheck(ctx, names, u.CheckAvailability)
}

type checkFunc func(ctx context.Context, name string) (*domain.AvailabilityVerdict, error)

func bulkCheck(ctx context.Context, names []string, check checkFunc) (*domain.BulkCheckResult, error) {
	batchID := uuid.NewString()
	log.Printf("[BulkCheck] START batch=%s domains=%d", batchID, len(names))

	verdicts := make([]domain.AvailabilityVerdict, len(names))
	failed := make([]bool, len(names))

	var g errgroup.Group
	for i, raw := range names {
		g.Go(func() error {
			verdict, err := check(ctx, raw)
			if err != nil {
				log.Printf("[BulkCheck] batch=%s domain=%q ERROR: %v", batchID, raw, err)
				verdicts[i] = domain.AvailabilityVerdict{
					Domain:    raw,
					Available: false,
					Reason:    domain.ReasonErrorChecking,
				}
				failed[i] = true
				return nil
			}
			verdicts[i] = *verdict
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := domain.BulkCheckSummary{Total: len(names)}
	for i, v := range verdicts {
		switch {
		case failed[i]:
			summary.Errors++
		case v.Available:
			summary.Available++
		default:
			summary.Taken++
		}
	}

	log.Printf("[BulkCheck] SUCCESS batch=%s available=%d taken=%d errors=%d",
		batchID, summary.Available, summary.Taken, summary.Errors)
	return &domain.BulkCheckResult{Domains: verdicts, Summary: summary}, nil
}
