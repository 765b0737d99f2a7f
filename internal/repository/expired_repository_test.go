package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"domain-mcp/external_resource/feeds"
	feedmocks "domain-mcp/external_resource/feeds/mocks"
	"domain-mcp/internal/domain"
)

type ExpiredRepositorySuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	sources []*feedmocks.MockSource
	repo    ExpiredRepository
}

func TestExpiredRepositorySuite(t *testing.T) {
	suite.Run(t, new(ExpiredRepositorySuite))
}

func (s *ExpiredRepositorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sources = nil

	names := []string{"DomainsDB", "Dynadot", "NameJet", "SnapNames"}
	sources := make([]feeds.Source, 0, len(names))
	for _, name := range names {
		src := feedmocks.NewMockSource(s.ctrl)
		src.EXPECT().Name().Return(name).AnyTimes()
		s.sources = append(s.sources, src)
		sources = append(sources, src)
	}
	s.repo = NewExpiredRepository(sources, nil)
}

func listings(source, status string, names ...string) []feeds.Listing {
	out := make([]feeds.Listing, 0, len(names))
	for _, n := range names {
		out = append(out, feeds.Listing{Domain: n, Status: status, Source: source})
	}
	return out
}

func numbered(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d.com", prefix, i)
	}
	return names
}

func (s *ExpiredRepositorySuite) TestFirstSourceFillsCap() {
	query := feeds.Query{Keyword: "shop", TLD: "com", Limit: domain.MaxExpiredResults}
	s.sources[0].EXPECT().Fetch(gomock.Any(), query).
		Return(listings("DomainsDB", feeds.StatusExpired, numbered("shop", 12)...), nil).
		Times(1)
	// later sources have no expectations: any Fetch call fails the test

	results, err := s.repo.Search(context.Background(), domain.ExpiredSearch{Keyword: "shop", TLD: "com"})
	s.Require().NoError(err)
	s.Len(results, domain.MaxExpiredResults)
	s.Equal("shop0.com", results[0].Domain)
	s.Equal("shop9.com", results[9].Domain)
}

func (s *ExpiredRepositorySuite) TestDeduplicatesAcrossSourcesInPriorityOrder() {
	hasDNS := true
	first := listings("DomainsDB", feeds.StatusExpired, "a.com", "b.com")
	first[0].HasDNS = &hasDNS

	s.sources[0].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(first, nil)
	s.sources[1].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(listings("Dynadot", feeds.StatusPendingDelete, "b.com", "c.com", "c.com"), nil)
	s.sources[2].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("status 403"))
	s.sources[3].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(listings("SnapNames", feeds.StatusPendingDelete, "a.com", "d.com"), nil)

	results, err := s.repo.Search(context.Background(), domain.ExpiredSearch{})
	s.Require().NoError(err)

	var names []string
	seen := map[string]bool{}
	for _, r := range results {
		s.False(seen[r.Domain], "duplicate %s", r.Domain)
		seen[r.Domain] = true
		names = append(names, r.Domain)
	}
	s.Equal([]string{"a.com", "b.com", "c.com", "d.com"}, names)

	s.Equal("DomainsDB", results[0].Source)
	s.Equal(domain.ExpiredStatusExpired, results[0].Status)
	s.Require().NotNil(results[0].HasDNS)
	s.True(*results[0].HasDNS)
	s.Equal("DomainsDB", results[1].Source)
	s.Equal("Dynadot", results[2].Source)
	s.Equal("SnapNames", results[3].Source)
}

func (s *ExpiredRepositorySuite) TestStopsMidSourceAtCap() {
	s.sources[0].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(listings("DomainsDB", feeds.StatusExpired, numbered("x", 6)...), nil)
	s.sources[1].EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(listings("Dynadot", feeds.StatusPendingDelete, numbered("y", 8)...), nil)

	results, err := s.repo.Search(context.Background(), domain.ExpiredSearch{})
	s.Require().NoError(err)
	s.Len(results, domain.MaxExpiredResults)
	s.Equal("y3.com", results[9].Domain)
}

func (s *ExpiredRepositorySuite) TestAllSourcesFail() {
	for _, src := range s.sources {
		src.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("unreachable"))
	}

	results, err := s.repo.Search(context.Background(), domain.ExpiredSearch{Keyword: "zzz"})
	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)
}

func (s *ExpiredRepositorySuite) TestCancelledBeforeFirstSource() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.repo.Search(ctx, domain.ExpiredSearch{})
	s.ErrorIs(err, context.Canceled)
}
