package feeds

import "context"

// Source is one expired/pending-delete domain feed
type Source interface {
	// Name is the source tag attached to every listing
	Name() string
	// Fetch downloads the feed and returns listings matching the query,
	// at most query.Limit of them. A failed download is returned as an error.
	Fetch(ctx context.Context, query Query) ([]Listing, error)
}

// Query filters feed entries
type Query struct {
	Keyword string
	TLD     string
	Limit   int
}

// Listing is a single feed entry
type Listing struct {
	Domain        string
	Status        string
	Source        string
	Created       string
	Updated       string
	EndTime       string
	Appraisal     string
	StartingPrice string
	HasDNS        *bool
}
