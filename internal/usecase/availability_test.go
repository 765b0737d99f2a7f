package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"domain-mcp/external_resource/tlsinspect"
	tlsmocks "domain-mcp/external_resource/tlsinspect/mocks"
	"domain-mcp/internal/domain"
	repomocks "domain-mcp/internal/repository/mocks"
)

type DomainUsecaseSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	whoisRepo *repomocks.MockWhoisRepository
	dnsRepo   *repomocks.MockDNSRepository
	expired   *repomocks.MockExpiredRepository
	inspector *tlsmocks.MockInspector
	usecase   *domainUsecase
	now       time.Time
}

func TestDomainUsecaseSuite(t *testing.T) {
	suite.Run(t, new(DomainUsecaseSuite))
}

func (s *DomainUsecaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.whoisRepo = repomocks.NewMockWhoisRepository(s.ctrl)
	s.dnsRepo = repomocks.NewMockDNSRepository(s.ctrl)
	s.expired = repomocks.NewMockExpiredRepository(s.ctrl)
	s.inspector = tlsmocks.NewMockInspector(s.ctrl)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	uc := NewDomainUsecase(s.whoisRepo, s.dnsRepo, s.expired, s.inspector, nil).(*domainUsecase)
	uc.now = func() time.Time { return s.now }
	s.usecase = uc
}

func registered(name string) *domain.WhoisRecord {
	return &domain.WhoisRecord{
		Domain:        name,
		Registrar:     "Example Registrar",
		CreationDate:  "1995-08-14T04:00:00Z",
		NameServers:   []string{"a.iana-servers.net"},
		Status:        []string{"active"},
		RawData:       "{}",
		RDAPAvailable: true,
	}
}

func resolved(name string, a ...string) *domain.DNSLookupResult {
	return &domain.DNSLookupResult{Domain: name, ARecords: a}
}

func (s *DomainUsecaseSuite) TestCheckAvailabilityReasons() {
	tests := []struct {
		name       string
		record     *domain.WhoisRecord
		lookup     *domain.DNSLookupResult
		dnsErr     error
		available  bool
		reason     string
		whoisAvail bool
		dnsAvail   bool
	}{
		{
			name:       "not found marker and no dns",
			record:     &domain.WhoisRecord{RawData: "No matching record.", Registrar: "ignored"},
			lookup:     resolved("example.com"),
			available:  true,
			reason:     domain.ReasonNoRecords,
			whoisAvail: true,
			dnsAvail:   true,
		},
		{
			name:      "registrar and address",
			record:    registered("example.com"),
			lookup:    resolved("example.com", "93.184.216.34"),
			available: false,
			reason:    domain.ReasonRegistered,
		},
		{
			name:      "registered without dns",
			record:    registered("example.com"),
			lookup:    resolved("example.com"),
			available: true,
			reason:    domain.ReasonNoDNS,
			dnsAvail:  true,
		},
		{
			name:       "no registrar but delegated",
			record:     &domain.WhoisRecord{RawData: "Domain Name: EXAMPLE.COM"},
			lookup:     &domain.DNSLookupResult{NSRecords: []string{"ns1.example.com."}},
			available:  true,
			reason:     domain.ReasonNoWhois,
			whoisAvail: true,
		},
		{
			name:      "dns total failure defaults to available",
			record:    registered("example.com"),
			lookup:    resolved("example.com"),
			dnsErr:    domain.ErrSourceUnavailable,
			available: true,
			reason:    domain.ReasonNoDNS,
			dnsAvail:  true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(tt.record, nil)
			s.dnsRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(tt.lookup, tt.dnsErr)

			verdict, err := s.usecase.CheckAvailability(context.Background(), "https://www.Example.com/")
			s.Require().NoError(err)
			s.Equal("example.com", verdict.Domain)
			s.Equal(tt.available, verdict.Available)
			s.Equal(tt.reason, verdict.Reason)
			s.Require().NotNil(verdict.WhoisAvailable)
			s.Require().NotNil(verdict.DNSAvailable)
			s.Equal(tt.whoisAvail, *verdict.WhoisAvailable)
			s.Equal(tt.dnsAvail, *verdict.DNSAvailable)
		})
	}
}

func (s *DomainUsecaseSuite) TestCheckAvailabilityInvalidDomain() {
	_, err := s.usecase.CheckAvailability(context.Background(), "  https://www./ ")
	s.ErrorIs(err, domain.ErrInvalidDomain)
}

func (s *DomainUsecaseSuite) TestBulkCheckKeepsDuplicatesAndOrder() {
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "taken.com").Return(registered("taken.com"), nil).Times(2)
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "taken.com").Return(resolved("taken.com", "1.1.1.1"), nil).Times(2)
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "free.com").Return(&domain.WhoisRecord{RawData: "NOT FOUND"}, nil)
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "free.com").Return(resolved("free.com"), nil)

	result, err := s.usecase.BulkCheck(context.Background(), []string{"taken.com", "free.com", "", "TAKEN.com"})
	s.Require().NoError(err)
	s.Require().Len(result.Domains, 4)

	s.Equal("taken.com", result.Domains[0].Domain)
	s.False(result.Domains[0].Available)
	s.Equal("free.com", result.Domains[1].Domain)
	s.True(result.Domains[1].Available)
	s.Equal("", result.Domains[2].Domain)
	s.Equal(domain.ReasonErrorChecking, result.Domains[2].Reason)
	s.Nil(result.Domains[2].WhoisAvailable)
	s.Equal("taken.com", result.Domains[3].Domain)

	s.Equal(domain.BulkCheckSummary{Total: 4, Available: 1, Taken: 2, Errors: 1}, result.Summary)
}

func servedCertificate(now time.Time) tlsinspect.Certificate {
	return tlsinspect.Certificate{
		Issuer:             "CN=Example CA",
		Subject:            "CN=example.com",
		SerialNumber:       "1234",
		NotBefore:          now.AddDate(0, -2, 0),
		NotAfter:           now.AddDate(0, 0, 30),
		SignatureAlgorithm: "SHA256-RSA",
		DNSNames:           []string{"example.com", "www.example.com"},
		HostnameVerified:   true,
	}
}

func (s *DomainUsecaseSuite) TestCertificateInfo() {
	cert := servedCertificate(s.now)
	s.inspector.EXPECT().Inspect(gomock.Any(), "example.com").Return(&cert, nil)

	info, err := s.usecase.CertificateInfo(context.Background(), "example.com")
	s.Require().NoError(err)
	s.True(info.IsValid)
	s.Require().NotNil(info.DaysUntilExpiry)
	s.Equal(int64(30), *info.DaysUntilExpiry)
	s.Equal("2025-07-15T12:00:00Z", info.NotAfter)
	s.Equal([]string{"example.com", "www.example.com"}, info.SANDomains)
}

func (s *DomainUsecaseSuite) TestCertificateInfoHostnameMismatch() {
	cert := servedCertificate(s.now)
	cert.HostnameVerified = false
	s.inspector.EXPECT().Inspect(gomock.Any(), "example.com").Return(&cert, nil)

	info, err := s.usecase.CertificateInfo(context.Background(), "example.com")
	s.Require().NoError(err)
	s.False(info.IsValid)
}

func (s *DomainUsecaseSuite) TestCertificateInfoUnavailable() {
	s.inspector.EXPECT().Inspect(gomock.Any(), "example.com").Return(nil, errors.New("connection refused"))

	_, err := s.usecase.CertificateInfo(context.Background(), "example.com")
	s.ErrorIs(err, domain.ErrCertificateUnavailable)
}

func (s *DomainUsecaseSuite) TestSearchExpiredTrimsFilters() {
	want := []domain.ExpiredDomain{{Domain: "shop.io", Status: domain.ExpiredStatusExpired, Source: "DomainsDB"}}
	s.expired.EXPECT().Search(gomock.Any(), domain.ExpiredSearch{Keyword: "shop", TLD: "io"}).Return(want, nil)

	got, err := s.usecase.SearchExpired(context.Background(), " shop ", ".io")
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *DomainUsecaseSuite) TestDNSLookupDegradesTotalFailure() {
	empty := resolved("example.com")
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(empty, fmt.Errorf("%w: all failed", domain.ErrSourceUnavailable))

	result, err := s.usecase.DNSLookup(context.Background(), "EXAMPLE.com")
	s.Require().NoError(err)
	s.Equal(empty, result)
}

func TestDecideBothFailed(t *testing.T) {
	verdict := Decide("example.com", nil, nil)
	assert.True(t, verdict.Available)
	assert.Equal(t, domain.ReasonNoRecords, verdict.Reason)
	assert.Nil(t, verdict.WhoisAvailable)
	assert.Nil(t, verdict.DNSAvailable)
}

func TestBulkCheckSummaryWithFailures(t *testing.T) {
	names := []string{"a.com", "fail1.com", "b.com", "fail2.com", "c.com", "a.com"}
	var calls atomic.Int32

	check := func(ctx context.Context, name string) (*domain.AvailabilityVerdict, error) {
		calls.Add(1)
		if strings.HasPrefix(name, "fail") {
			return nil, errors.New("upstream exploded")
		}
		return &domain.AvailabilityVerdict{Domain: name, Available: name != "b.com"}, nil
	}

	result, err := bulkCheck(context.Background(), names, check)
	require.NoError(t, err)

	assert.Equal(t, int32(len(names)), calls.Load())
	require.Len(t, result.Domains, len(names))
	for i, name := range names {
		assert.Equal(t, name, result.Domains[i].Domain)
	}

	s := result.Summary
	assert.Equal(t, len(names), s.Total)
	assert.Equal(t, 2, s.Errors)
	assert.Equal(t, s.Total, s.Available+s.Taken+s.Errors)
	assert.Equal(t, 3, s.Available)
	assert.Equal(t, 1, s.Taken)

	assert.False(t, result.Domains[1].Available)
	assert.Equal(t, domain.ReasonErrorChecking, result.Domains[1].Reason)
}

func TestBulkCheckEmpty(t *testing.T) {
	result, err := bulkCheck(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Domains)
	assert.Equal(t, domain.BulkCheckSummary{}, result.Summary)
}
