package usecase

import (
	"context"
	"time"

	"domain-mcp/internal/domain"
)

// creationDateLayouts are tried in order. Fractional seconds after the
// seconds field are accepted by time.Parse without being in the layout.
var creationDateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
}

const (
	daysPerYear   = 365.25
	secondsPerDay = 24 * 60 * 60
)

// CheckAge derives the domain age from the registration creation date
func (u *domainUsecase) CheckAge(ctx context.Context, raw string) (*domain.DomainAge, error) {
	name, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	record, err := u.whoisRepo.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	age := &domain.DomainAge{Domain: name}
	if record.CreationDate == "" {
		return age, nil
	}

	created := record.CreationDate
	age.CreationDate = &created
	if days, years, ok := AgeSince(created, u.now()); ok {
		age.AgeDays = &days
		age.AgeYears = &years
	}
	return age, nil
}

// AgeSince returns whole days (truncated toward zero) and years between the
// creation date and now. ok is false when no layout parses.
func AgeSince(creationDate string, now time.Time) (days int64, years float64, ok bool) {
	created, ok := ParseCreationDate(creationDate)
	if !ok {
		return 0, 0, false
	}
	days = wholeDaysBetween(created, now)
	return days, float64(days) / daysPerYear, true
}

// wholeDaysBetween truncates toward zero. It works on Unix seconds so
// dates centuries apart do not overflow time.Duration.
func wholeDaysBetween(from, to time.Time) int64 {
	secs := to.Unix() - from.Unix()
	ns := to.Nanosecond() - from.Nanosecond()
	switch {
	case ns < 0 && secs > 0:
		secs--
	case ns > 0 && secs < 0:
		secs++
	}
	return secs / secondsPerDay
}

// ParseCreationDate parses registry date strings; date-only values are midnight UTC
func ParseCreationDate(value string) (time.Time, bool) {
	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
