package domain

import "strings"

// Normalize canonicalizes a user supplied domain string.
// Scheme, leading "www." and trailing "/" are stripped until none remain,
// so Normalize(Normalize(x)) == Normalize(x). No syntax validation is done.
func Normalize(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	for {
		prev := d
		d = strings.TrimPrefix(d, "http://")
		d = strings.TrimPrefix(d, "https://")
		d = strings.TrimPrefix(d, "www.")
		d = strings.TrimSuffix(d, "/")
		d = strings.TrimSpace(d)
		if d == prev {
			return d
		}
	}
}

// TLD returns the final dot-separated label of a domain
func TLD(domain string) string {
	if i := strings.LastIndex(domain, "."); i >= 0 {
		return domain[i+1:]
	}
	return domain
}
