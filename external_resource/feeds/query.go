package feeds

import "strings"

// Listing status tags
const (
	StatusExpired        = "expired"
	StatusUnknown        = "unknown"
	StatusPendingDelete  = "pending delete"
	StatusAuctionPending = "auction/pending"
)

// DefaultLimit caps the listings a single source returns
const DefaultLimit = 10

// Matches reports whether a feed domain passes the keyword and TLD filters.
// Names without a dot are never domains.
func (q Query) Matches(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}
	if q.Keyword != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(q.Keyword)) {
		return false
	}
	if q.TLD != "" && !strings.HasSuffix(name, "."+q.TLD) {
		return false
	}
	return true
}

func (q Query) limit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}
