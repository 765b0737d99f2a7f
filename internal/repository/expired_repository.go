package repository

import (
	"context"
	"log"

	"github.com/google/uuid"

	"domain-mcp/external_resource/feeds"
	"domain-mcp/internal/domain"
	"domain-mcp/internal/metrics"
)

// expiredRepository implements ExpiredRepository over an ordered list of feeds
type expiredRepository struct {
	sources []feeds.Source
	metrics *metrics.Metrics
}

// NewExpiredRepository creates an aggregator that queries sources in the given priority order
func NewExpiredRepository(sources []feeds.Source, m *metrics.Metrics) ExpiredRepository {
	return &expiredRepository{
		sources: sources,
		metrics: m,
	}
}

// Search merges feed listings in priority order, keeping the first occurrence
// of each domain and stopping once the cap is reached. Feed failures are skipped.
func (r *expiredRepository) Search(ctx context.Context, search domain.ExpiredSearch) ([]domain.ExpiredDomain, error) {
	runID := uuid.NewString()
	log.Printf("[ExpiredRepository] Search START run=%s keyword=%q tld=%q", runID, search.Keyword, search.TLD)

	query := feeds.Query{
		Keyword: search.Keyword,
		TLD:     search.TLD,
		Limit:   domain.MaxExpiredResults,
	}

	results := make([]domain.ExpiredDomain, 0, domain.MaxExpiredResults)
	seen := make(map[string]struct{}, domain.MaxExpiredResults)

	for _, source := range r.sources {
		if len(results) >= domain.MaxExpiredResults {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listings, err := source.Fetch(ctx, query)
		r.metrics.IncFeedFetch(source.Name(), err)
		if err != nil {
			log.Printf("[ExpiredRepository] Search run=%s source=%s skipped: %v", runID, source.Name(), err)
			continue
		}

		for _, l := range listings {
			if _, dup := seen[l.Domain]; dup {
				continue
			}
			seen[l.Domain] = struct{}{}
			results = append(results, mapListing(l))
			if len(results) >= domain.MaxExpiredResults {
				break
			}
		}
		log.Printf("[ExpiredRepository] Search run=%s source=%s listings=%d total=%d", runID, source.Name(), len(listings), len(results))
	}

	r.metrics.ObserveExpiredResults(len(results))
	log.Printf("[ExpiredRepository] Search SUCCESS run=%s results=%d", runID, len(results))
	return results, nil
}

func mapListing(l feeds.Listing) domain.ExpiredDomain {
	return domain.ExpiredDomain{
		Domain:        l.Domain,
		Status:        l.Status,
		Source:        l.Source,
		Created:       l.Created,
		Updated:       l.Updated,
		EndTime:       l.EndTime,
		Appraisal:     l.Appraisal,
		StartingPrice: l.StartingPrice,
		HasDNS:        l.HasDNS,
	}
}
