package repository

import (
	"context"
	"log"

	"domain-mcp/external_resource/rdap"
	"domain-mcp/external_resource/whois"
	"domain-mcp/internal/domain"
	"domain-mcp/internal/metrics"
)

// whoisRepository implements WhoisRepository as an RDAP -> whois -> unknown chain
type whoisRepository struct {
	rdap    rdap.Client
	runner  whois.Runner
	metrics *metrics.Metrics
}

// NewWhoisRepository creates a new WHOIS repository
func NewWhoisRepository(rdapClient rdap.Client, runner whois.Runner, m *metrics.Metrics) WhoisRepository {
	return &whoisRepository{
		rdap:    rdapClient,
		runner:  runner,
		metrics: m,
	}
}

// Lookup returns exactly one record for the domain
func (r *whoisRepository) Lookup(ctx context.Context, name string) (*domain.WhoisRecord, error) {
	log.Printf("[WhoisRepository] Lookup START name=%s", name)

	doc, rdapErr := r.rdap.Lookup(ctx, name)
	if rdapErr == nil {
		r.metrics.IncWhoisStage(metrics.StageRDAP)
		log.Printf("[WhoisRepository] Lookup SUCCESS name=%s source=rdap server=%s", name, doc.Server)
		return recordFromRDAP(name, doc), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("[WhoisRepository] RDAP failed name=%s, trying %s whois: %v", name, r.runner.Name(), rdapErr)

	raw, err := r.runner.Run(ctx, name)
	if err == nil {
		r.metrics.IncWhoisStage(metrics.StageWhois)
		log.Printf("[WhoisRepository] Lookup SUCCESS name=%s source=whois", name)
		return ParseWhoisText(name, raw), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	r.metrics.IncWhoisStage(metrics.StageUnknown)
	log.Printf("[WhoisRepository] Lookup ERROR name=%s whois runner failed: %v", name, err)
	return domain.NewUnknownWhoisRecord(name, rdapErr.Error()), nil
}

func recordFromRDAP(name string, doc *rdap.Domain) *domain.WhoisRecord {
	record := &domain.WhoisRecord{
		Domain:        name,
		NameServers:   doc.NameServerNames(),
		Status:        doc.Statuses(),
		RawData:       doc.Indented(),
		RDAPAvailable: true,
	}
	record.Registrar, _ = doc.Registrar()
	record.CreationDate, _ = doc.CreationDate()
	record.ExpiryDate, _ = doc.ExpirationDate()
	record.UpdatedDate, _ = doc.UpdatedDate()
	return record
}
