package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"domain-mcp/internal/domain"
	repomocks "domain-mcp/internal/repository/mocks"
)

type PortfolioUsecaseSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	zoneRepo  *repomocks.MockZoneRepository
	whoisRepo *repomocks.MockWhoisRepository
	dnsRepo   *repomocks.MockDNSRepository
	usecase   PortfolioUsecase
}

func TestPortfolioUsecaseSuite(t *testing.T) {
	suite.Run(t, new(PortfolioUsecaseSuite))
}

func (s *PortfolioUsecaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.zoneRepo = repomocks.NewMockZoneRepository(s.ctrl)
	s.whoisRepo = repomocks.NewMockWhoisRepository(s.ctrl)
	s.dnsRepo = repomocks.NewMockDNSRepository(s.ctrl)
	s.usecase = NewPortfolioUsecase(s.zoneRepo, s.whoisRepo, s.dnsRepo)
}

func (s *PortfolioUsecaseSuite) TestDisabledWithoutZoneRepository() {
	uc := NewPortfolioUsecase(nil, s.whoisRepo, s.dnsRepo)

	_, err := uc.ListZones(context.Background())
	s.ErrorIs(err, domain.ErrPortfolioDisabled)

	_, err = uc.CheckPortfolio(context.Background())
	s.ErrorIs(err, domain.ErrPortfolioDisabled)
}

func (s *PortfolioUsecaseSuite) TestListZonesError() {
	s.zoneRepo.EXPECT().ListZones(gomock.Any()).Return(nil, errors.New("api down"))

	_, err := s.usecase.ListZones(context.Background())
	s.Error(err)
	s.Contains(err.Error(), "failed to list zones")
}

func (s *PortfolioUsecaseSuite) TestCheckPortfolio() {
	zones := []domain.Zone{
		{ID: "z1", Name: "example.com", Status: "active"},
		{ID: "z2", Name: "Parked.io", Status: "pending"},
	}
	s.zoneRepo.EXPECT().ListZones(gomock.Any()).Return(zones, nil)

	active := registered("example.com")
	active.ExpiryDate = "2026-08-13T04:00:00Z"
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(active, nil)
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(resolved("example.com", "93.184.216.34"), nil)

	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "parked.io").Return(nil, errors.New("whois down"))
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "parked.io").Return(resolved("parked.io"), nil)

	entries, err := s.usecase.CheckPortfolio(context.Background())
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal(zones[0], entries[0].Zone)
	s.False(entries[0].Availability.Available)
	s.Equal(domain.ReasonRegistered, entries[0].Availability.Reason)
	s.Equal("2026-08-13T04:00:00Z", entries[0].ExpiryDate)
	s.Equal("Example Registrar", entries[0].Registrar)

	s.Equal(zones[1], entries[1].Zone)
	s.Equal("parked.io", entries[1].Availability.Domain)
	s.True(entries[1].Availability.Available)
	s.Empty(entries[1].ExpiryDate)
	s.Empty(entries[1].Registrar)
}

func (s *PortfolioUsecaseSuite) TestCheckZone() {
	zone := &domain.Zone{ID: "z1", Name: "example.com", Status: "active"}
	s.zoneRepo.EXPECT().GetZoneByName(gomock.Any(), "example.com").Return(zone, nil)
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(registered("example.com"), nil)
	s.dnsRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(resolved("example.com", "93.184.216.34"), nil)

	entry, err := s.usecase.CheckZone(context.Background(), "https://www.Example.com/")
	s.Require().NoError(err)
	s.Equal(*zone, entry.Zone)
	s.Equal(domain.ReasonRegistered, entry.Availability.Reason)
	s.Equal("Example Registrar", entry.Registrar)
}

func (s *PortfolioUsecaseSuite) TestCheckZoneErrors() {
	uc := NewPortfolioUsecase(nil, s.whoisRepo, s.dnsRepo)
	_, err := uc.CheckZone(context.Background(), "example.com")
	s.ErrorIs(err, domain.ErrPortfolioDisabled)

	_, err = s.usecase.CheckZone(context.Background(), "  ")
	s.ErrorIs(err, domain.ErrInvalidDomain)

	s.zoneRepo.EXPECT().GetZoneByName(gomock.Any(), "other.com").Return(nil, domain.ErrZoneNotFound)
	_, err = s.usecase.CheckZone(context.Background(), "other.com")
	s.ErrorIs(err, domain.ErrZoneNotFound)
}
