package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"domain-mcp/internal/domain"
)

func TestAgeSince(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		created  string
		wantDays int64
		wantOK   bool
	}{
		{name: "rfc3339 utc", created: now.Add(-24 * time.Hour).Format("2006-01-02T15:04:05Z"), wantDays: 1, wantOK: true},
		{name: "fractional seconds", created: "2025-06-14T12:00:00.123Z", wantDays: 0, wantOK: true},
		{name: "space separated", created: "2025-06-05 12:00:00", wantDays: 10, wantOK: true},
		{name: "date only", created: "2025-06-05", wantDays: 10, wantOK: true},
		{name: "registry style", created: "05-Jun-2025", wantDays: 10, wantOK: true},
		{name: "future date is negative", created: now.Add(72 * time.Hour).Format("2006-01-02T15:04:05Z"), wantDays: -3, wantOK: true},
		{name: "partial future day truncates toward zero", created: now.Add(12 * time.Hour).Format("2006-01-02T15:04:05Z"), wantDays: 0, wantOK: true},
		{name: "future fractional seconds", created: "2025-06-16T11:59:59.500Z", wantDays: 0, wantOK: true},
		{name: "placeholder year one", created: "0001-01-01", wantDays: 739416, wantOK: true},
		{name: "unparsable", created: "sometime in 1997", wantOK: false},
		{name: "empty", created: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, years, ok := AgeSince(tt.created, now)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantDays, days)
			assert.InDelta(t, float64(tt.wantDays)/daysPerYear, years, 1e-9)
		})
	}
}

func TestAgeSinceOldRegistration(t *testing.T) {
	days, years, ok := AgeSince("15-Sep-1997", time.Now())
	assert.True(t, ok)
	assert.Greater(t, days, int64(9000))
	assert.Greater(t, years, 24.0)
}

func (s *DomainUsecaseSuite) TestCheckAge() {
	record := registered("example.com")
	record.CreationDate = "2024-06-15T12:00:00Z"
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(record, nil)

	age, err := s.usecase.CheckAge(context.Background(), "www.example.com")
	s.Require().NoError(err)
	s.Require().NotNil(age.CreationDate)
	s.Equal("2024-06-15T12:00:00Z", *age.CreationDate)
	s.Require().NotNil(age.AgeDays)
	s.Equal(int64(365), *age.AgeDays)
	s.Require().NotNil(age.AgeYears)
	s.InDelta(365/daysPerYear, *age.AgeYears, 1e-9)
}

func (s *DomainUsecaseSuite) TestCheckAgeUnparsableDate() {
	record := registered("example.com")
	record.CreationDate = "before the internet"
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(record, nil)

	age, err := s.usecase.CheckAge(context.Background(), "example.com")
	s.Require().NoError(err)
	s.Require().NotNil(age.CreationDate)
	s.Equal("before the internet", *age.CreationDate)
	s.Nil(age.AgeDays)
	s.Nil(age.AgeYears)
}

func (s *DomainUsecaseSuite) TestCheckAgeUnknownRecord() {
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").
		Return(domain.NewUnknownWhoisRecord("example.com", "RDAP lookup failed: boom"), nil)

	age, err := s.usecase.CheckAge(context.Background(), "example.com")
	s.Require().NoError(err)
	s.Equal(&domain.DomainAge{Domain: "example.com"}, age)
}

func (s *DomainUsecaseSuite) TestCheckAgeLookupError() {
	s.whoisRepo.EXPECT().Lookup(gomock.Any(), "example.com").Return(nil, context.Canceled)

	_, err := s.usecase.CheckAge(context.Background(), "example.com")
	s.True(errors.Is(err, context.Canceled))
}
