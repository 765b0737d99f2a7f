package feeds

import (
	"context"
	"log"
	"net/http"
)

// NameJetURLs are the NameJet inventory downloads, tried in order
var NameJetURLs = []string{
	"https://www.namejet.com/download/namejet_inventory.txt",
	"https://www.namejet.com/download/namejet-inventory.csv",
}

type nameJet struct {
	http *http.Client
	urls []string
}

// NewNameJet creates the NameJet inventory source
func NewNameJet(httpClient *http.Client, urls []string) Source {
	if len(urls) == 0 {
		urls = NameJetURLs
	}
	return &nameJet{
		http: httpClient,
		urls: urls,
	}
}

func (s *nameJet) Name() string {
	return "NameJet"
}

// Fetch tries each inventory file until one yields a match. Only the first
// column is used, so plain text lists work too.
func (s *nameJet) Fetch(ctx context.Context, query Query) ([]Listing, error) {
	limit := query.limit()
	listings := make([]Listing, 0, limit)

	var lastErr error
	for _, url := range s.urls {
		body, err := download(ctx, s.http, s.Name(), url, feedUserAgent)
		if err != nil {
			log.Printf("[Feeds] NameJet download failed url=%s error=%v", url, err)
			lastErr = err
			continue
		}

		err = eachRecord(body, false, func(fields []string) bool {
			if len(fields) == 0 || !query.Matches(fields[0]) {
				return true
			}
			listings = append(listings, Listing{
				Domain: fields[0],
				Status: StatusAuctionPending,
				Source: s.Name(),
			})
			return len(listings) < limit
		})
		body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if len(listings) > 0 {
			return listings, nil
		}
	}

	if len(listings) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return listings, nil
}
