package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"domain-mcp/internal/domain"
	"domain-mcp/internal/metrics"
	ucmocks "domain-mcp/internal/usecase/mocks"
)

type RegistrySuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	domainUC  *ucmocks.MockDomainUsecase
	portfolio *ucmocks.MockPortfolioUsecase
	metrics   *metrics.Metrics
	registry  *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.domainUC = ucmocks.NewMockDomainUsecase(s.ctrl)
	s.portfolio = ucmocks.NewMockPortfolioUsecase(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.registry = NewRegistry(s.domainUC, s.portfolio, s.metrics)
}

func (s *RegistrySuite) TestToolNamesInOrder() {
	var names []string
	for _, t := range s.registry.Tools() {
		names = append(names, t.Name)
	}
	s.Equal([]string{
		"whois_lookup",
		"dns_lookup",
		"check_domain_availability",
		"ssl_certificate_info",
		"search_expired_domains",
		"domain_age_check",
		"bulk_domain_check",
		"get_dns_records",
		"list_portfolio",
		"check_portfolio",
	}, names)

	list := s.registry.ToolsList()["tools"].([]map[string]interface{})
	s.Len(list, len(names))
	s.Equal("whois_lookup", list[0]["name"])
	s.NotNil(list[0]["inputSchema"])
}

func (s *RegistrySuite) TestCallRendersJSON() {
	available := true
	verdict := &domain.AvailabilityVerdict{
		Domain:         "example.com",
		Available:      true,
		Reason:         domain.ReasonNoRecords,
		WhoisAvailable: &available,
		DNSAvailable:   &available,
	}
	s.domainUC.EXPECT().CheckAvailability(gomock.Any(), "example.com").Return(verdict, nil)

	result, err := s.registry.Call(context.Background(), "check_domain_availability", map[string]interface{}{"domain": "example.com"})
	s.Require().NoError(err)
	s.False(result.IsError)

	var decoded domain.AvailabilityVerdict
	s.Require().NoError(json.Unmarshal([]byte(result.Text), &decoded))
	s.Equal(*verdict, decoded)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ToolCalls.WithLabelValues("check_domain_availability", metrics.OutcomeSuccess)))
}

func (s *RegistrySuite) TestCallMissingArgument() {
	result, err := s.registry.Call(context.Background(), "whois_lookup", nil)
	s.Require().NoError(err)
	s.True(result.IsError)
	s.Equal("Error: domain is required", result.Text)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ToolCalls.WithLabelValues("whois_lookup", metrics.OutcomeFailure)))
}

func (s *RegistrySuite) TestCallUsecaseError() {
	s.domainUC.EXPECT().CertificateInfo(gomock.Any(), "example.com").
		Return(nil, errors.New("certificate unavailable: connection refused"))

	result, err := s.registry.Call(context.Background(), "ssl_certificate_info", map[string]interface{}{"domain": "example.com"})
	s.Require().NoError(err)
	s.True(result.IsError)
	s.Contains(result.Text, "connection refused")
}

func (s *RegistrySuite) TestCallUnknownTool() {
	_, err := s.registry.Call(context.Background(), "create_record", nil)
	s.ErrorIs(err, ErrUnknownTool)
}

func (s *RegistrySuite) TestSearchExpiredUsesFirstKeywordAndTLD() {
	s.domainUC.EXPECT().SearchExpired(gomock.Any(), "shop", "io").Return([]domain.ExpiredDomain{}, nil)

	result, err := s.registry.Call(context.Background(), "search_expired_domains", map[string]interface{}{
		"keywords": []interface{}{"shop", "store"},
		"tlds":     []interface{}{"io", "com"},
	})
	s.Require().NoError(err)
	s.False(result.IsError)
	s.Equal("[]", result.Text)
}

func (s *RegistrySuite) TestSearchExpiredWithoutFilters() {
	s.domainUC.EXPECT().SearchExpired(gomock.Any(), "", "").Return([]domain.ExpiredDomain{}, nil)

	result, err := s.registry.Call(context.Background(), "search_expired_domains", map[string]interface{}{"keywords": []interface{}{}})
	s.Require().NoError(err)
	s.False(result.IsError)
}

func (s *RegistrySuite) TestBulkDomainCheck() {
	s.domainUC.EXPECT().BulkCheck(gomock.Any(), []string{"a.com", "b.com"}).Return(&domain.BulkCheckResult{
		Domains: []domain.AvailabilityVerdict{{Domain: "a.com"}, {Domain: "b.com"}},
		Summary: domain.BulkCheckSummary{Total: 2, Taken: 2},
	}, nil)

	result, err := s.registry.Call(context.Background(), "bulk_domain_check", map[string]interface{}{
		"domains": []interface{}{"a.com", "b.com"},
	})
	s.Require().NoError(err)
	s.False(result.IsError)
	s.Contains(result.Text, `"taken": 2`)
}

func (s *RegistrySuite) TestBulkDomainCheckRejectsNonStrings() {
	result, err := s.registry.Call(context.Background(), "bulk_domain_check", map[string]interface{}{
		"domains": []interface{}{"a.com", 42.0},
	})
	s.Require().NoError(err)
	s.True(result.IsError)
}

func (s *RegistrySuite) TestPortfolioDisabled() {
	s.portfolio.EXPECT().ListZones(gomock.Any()).Return(nil, domain.ErrPortfolioDisabled)

	result, err := s.registry.Call(context.Background(), "list_portfolio", nil)
	s.Require().NoError(err)
	s.True(result.IsError)
	s.Equal("Error: portfolio is not configured", result.Text)
}

func (s *RegistrySuite) TestRegisterOnMCPServer() {
	s.NotNil(s.registry.NewMCPServer())
}
