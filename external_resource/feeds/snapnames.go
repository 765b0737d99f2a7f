package feeds

import (
	"context"
	"net/http"
)

// SnapNamesURL is the SnapNames deleting list
const SnapNamesURL = "https://www.snapnames.com/file_dl.sn?file=deletinglist.csv"

type snapNames struct {
	http *http.Client
	url  string
}

// NewSnapNames creates the SnapNames deletion list source
func NewSnapNames(httpClient *http.Client, url string) Source {
	if url == "" {
		url = SnapNamesURL
	}
	return &snapNames{
		http: httpClient,
		url:  url,
	}
}

func (s *snapNames) Name() string {
	return "SnapNames"
}

func (s *snapNames) Fetch(ctx context.Context, query Query) ([]Listing, error) {
	body, err := download(ctx, s.http, s.Name(), s.url, feedUserAgent)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	limit := query.limit()
	listings := make([]Listing, 0, limit)
	err = eachRecord(body, true, func(fields []string) bool {
		if len(fields) == 0 || !query.Matches(fields[0]) {
			return true
		}
		listings = append(listings, Listing{
			Domain: fields[0],
			Status: StatusPendingDelete,
			Source: s.Name(),
		})
		return len(listings) < limit
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}
