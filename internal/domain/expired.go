package domain

// Expired domain status tags
const (
	ExpiredStatusExpired       = "expired"
	ExpiredStatusUnknown       = "unknown"
	ExpiredStatusPendingDelete = "pending delete"
	ExpiredStatusAuction       = "auction/pending"
)

// MaxExpiredResults caps one aggregation run
const MaxExpiredResults = 10

// ExpiredDomain is a candidate from an expired, auction or pending-delete feed
type ExpiredDomain struct {
	Domain        string `json:"domain"`
	Status        string `json:"status"`
	Source        string `json:"source"`
	Created       string `json:"created,omitempty"`
	Updated       string `json:"updated,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	Appraisal     string `json:"appraisal,omitempty"`
	StartingPrice string `json:"starting_price,omitempty"`
	HasDNS        *bool  `json:"has_dns,omitempty"`
}

// ExpiredSearch filters an aggregation run. Empty fields match everything.
type ExpiredSearch struct {
	Keyword string
	TLD     string
}
