package feeds

import (
	"context"
	"net/http"
)

// DynadotURL is the Dynadot backorder CSV
const DynadotURL = "https://www.dynadot.com/market/backorder/backorders.csv"

type dynadot struct {
	http *http.Client
	url  string
}

// NewDynadot creates the Dynadot backorder source
func NewDynadot(httpClient *http.Client, url string) Source {
	if url == "" {
		url = DynadotURL
	}
	return &dynadot{
		http: httpClient,
		url:  url,
	}
}

func (s *dynadot) Name() string {
	return "Dynadot"
}

// Fetch reads domain,end_time,_,appraisal,starting_price rows
func (s *dynadot) Fetch(ctx context.Context, query Query) ([]Listing, error) {
	body, err := download(ctx, s.http, s.Name(), s.url, feedUserAgent)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	limit := query.limit()
	listings := make([]Listing, 0, limit)
	err = eachRecord(body, true, func(fields []string) bool {
		if len(fields) < 2 || !query.Matches(fields[0]) {
			return true
		}
		listings = append(listings, Listing{
			Domain:        fields[0],
			Status:        StatusPendingDelete,
			Source:        s.Name(),
			EndTime:       fields[1],
			Appraisal:     column(fields, 3),
			StartingPrice: column(fields, 4),
		})
		return len(listings) < limit
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func column(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
