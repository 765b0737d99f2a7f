package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"domain-mcp/external_resource/doh"
	"domain-mcp/internal/domain"
	"domain-mcp/internal/metrics"
)

// dnsRepository implements DNSRepository over a DNS-over-HTTPS client
type dnsRepository struct {
	client  doh.Client
	metrics *metrics.Metrics
}

// NewDNSRepository creates a new DNS repository
func NewDNSRepository(client doh.Client, m *metrics.Metrics) DNSRepository {
	return &dnsRepository{
		client:  client,
		metrics: m,
	}
}

type typeAnswers struct {
	recordType string
	answers    []doh.Answer
	err        error
}

// resolve queries every record type concurrently. A failed query never
// cancels the others.
func (r *dnsRepository) resolve(ctx context.Context, name string) ([]typeAnswers, error) {
	results := make([]typeAnswers, len(domain.RecordTypes))

	var g errgroup.Group
	for i, recordType := range domain.RecordTypes {
		g.Go(func() error {
			answers, err := r.client.Query(ctx, name, recordType)
			r.metrics.IncDNSQuery(recordType, err)
			if err != nil {
				log.Printf("[DNSRepository] Query ERROR name=%s type=%s: %v", name, recordType, err)
			}
			results[i] = typeAnswers{recordType: recordType, answers: answers, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var lastErr error
	for _, res := range results {
		if res.err == nil {
			return results, nil
		}
		lastErr = res.err
	}
	return results, fmt.Errorf("%w: every dns query for %s failed: %v", domain.ErrSourceUnavailable, name, lastErr)
}

// Lookup returns the typed record set for a domain
func (r *dnsRepository) Lookup(ctx context.Context, name string) (*domain.DNSLookupResult, error) {
	log.Printf("[DNSRepository] Lookup START name=%s", name)
	results, err := r.resolve(ctx, name)
	if results == nil {
		log.Printf("[DNSRepository] Lookup ERROR: %v", err)
		return nil, err
	}

	lookup := &domain.DNSLookupResult{
		Domain:       name,
		ARecords:     []string{},
		AAAARecords:  []string{},
		MXRecords:    []domain.MXRecord{},
		TXTRecords:   []string{},
		NSRecords:    []string{},
		CNAMERecords: []string{},
	}

	for _, res := range results {
		switch res.recordType {
		case domain.RecordTypeA:
			lookup.ARecords = appendData(lookup.ARecords, res.answers)
		case domain.RecordTypeAAAA:
			lookup.AAAARecords = appendData(lookup.AAAARecords, res.answers)
		case domain.RecordTypeTXT:
			lookup.TXTRecords = appendData(lookup.TXTRecords, res.answers)
		case domain.RecordTypeNS:
			lookup.NSRecords = appendData(lookup.NSRecords, res.answers)
		case domain.RecordTypeCNAME:
			lookup.CNAMERecords = appendData(lookup.CNAMERecords, res.answers)
		case domain.RecordTypeMX:
			for _, a := range res.answers {
				if mx, ok := ParseMX(a.Data); ok {
					lookup.MXRecords = append(lookup.MXRecords, mx)
				}
			}
		case domain.RecordTypeSOA:
			if len(res.answers) > 0 {
				lookup.SOARecord = ParseSOA(res.answers[0].Data)
			}
		}
	}

	if err != nil {
		log.Printf("[DNSRepository] Lookup ERROR: %v", err)
		return lookup, err
	}
	log.Printf("[DNSRepository] Lookup SUCCESS name=%s a=%d ns=%d", name, len(lookup.ARecords), len(lookup.NSRecords))
	return lookup, nil
}

// Records returns every answer as a flat entry, in record type order
func (r *dnsRepository) Records(ctx context.Context, name string) ([]domain.DNSRecord, error) {
	log.Printf("[DNSRepository] Records START name=%s", name)
	results, err := r.resolve(ctx, name)
	if results == nil {
		log.Printf("[DNSRepository] Records ERROR: %v", err)
		return nil, err
	}

	records := []domain.DNSRecord{}
	for _, res := range results {
		for _, a := range res.answers {
			ttl := a.TTL
			records = append(records, domain.DNSRecord{
				RecordType: res.recordType,
				Name:       name,
				Value:      a.Data,
				TTL:        &ttl,
			})
		}
	}

	if err != nil {
		log.Printf("[DNSRepository] Records ERROR: %v", err)
		return records, err
	}
	log.Printf("[DNSRepository] Records SUCCESS name=%s count=%d", name, len(records))
	return records, nil
}

func appendData(dst []string, answers []doh.Answer) []string {
	for _, a := range answers {
		dst = append(dst, a.Data)
	}
	return dst
}

// ParseMX splits "priority exchange". Lines with fewer than two tokens or a
// priority outside uint16 are rejected.
func ParseMX(data string) (domain.MXRecord, bool) {
	parts := strings.Fields(data)
	if len(parts) < 2 {
		return domain.MXRecord{}, false
	}
	priority, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return domain.MXRecord{}, false
	}
	return domain.MXRecord{Priority: uint16(priority), Exchange: parts[1]}, true
}

// ParseSOA reads "mname rname serial refresh retry expire minimum".
// Fewer than seven fields yields nil; unparsable numbers become 0.
func ParseSOA(data string) *domain.SOARecord {
	parts := strings.Fields(data)
	if len(parts) < 7 {
		return nil
	}
	return &domain.SOARecord{
		PrimaryNS:        parts[0],
		ResponsibleParty: parts[1],
		Serial:           parseUint32(parts[2]),
		Refresh:          parseInt32(parts[3]),
		Retry:            parseInt32(parts[4]),
		Expire:           parseInt32(parts[5]),
		Minimum:          parseUint32(parts[6]),
	}
}

func parseUint32(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func parseInt32(s string) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
