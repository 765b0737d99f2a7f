package repository

import (
	"regexp"
	"strings"

	"domain-mcp/internal/domain"
)

type whoisField int

const (
	fieldRegistrar whoisField = iota
	fieldRegistrant
	fieldCreationDate
	fieldExpiryDate
	fieldUpdatedDate
)

// fieldPattern pairs a record field with one way registries spell it
type fieldPattern struct {
	field   whoisField
	pattern *regexp.Regexp
}

// singleValuePatterns are evaluated top to bottom; the first match per field wins
var singleValuePatterns = []fieldPattern{
	{fieldRegistrar, regexp.MustCompile(`Registrar:\s*(.+)`)},
	{fieldRegistrar, regexp.MustCompile(`Sponsoring Registrar:\s*(.+)`)},
	{fieldRegistrar, regexp.MustCompile(`Registrar Name:\s*(.+)`)},

	{fieldRegistrant, regexp.MustCompile(`Registrant Organization:\s*(.+)`)},
	{fieldRegistrant, regexp.MustCompile(`Registrant:\s*(.+)`)},
	{fieldRegistrant, regexp.MustCompile(`Organization:\s*(.+)`)},

	{fieldCreationDate, regexp.MustCompile(`Creation Date:\s*(.+)`)},
	{fieldCreationDate, regexp.MustCompile(`Created:\s*(.+)`)},
	{fieldCreationDate, regexp.MustCompile(`Domain Registration Date:\s*(.+)`)},
	{fieldCreationDate, regexp.MustCompile(`created:\s*(.+)`)},

	{fieldExpiryDate, regexp.MustCompile(`Registry Expiry Date:\s*(.+)`)},
	{fieldExpiryDate, regexp.MustCompile(`Expiry Date:\s*(.+)`)},
	{fieldExpiryDate, regexp.MustCompile(`Expiration Date:\s*(.+)`)},
	{fieldExpiryDate, regexp.MustCompile(`expires:\s*(.+)`)},

	{fieldUpdatedDate, regexp.MustCompile(`Updated Date:\s*(.+)`)},
	{fieldUpdatedDate, regexp.MustCompile(`Last Updated:\s*(.+)`)},
	{fieldUpdatedDate, regexp.MustCompile(`Modified:\s*(.+)`)},
	{fieldUpdatedDate, regexp.MustCompile(`changed:\s*(.+)`)},
}

var nameServerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Name Server:\s*(.+)`),
	regexp.MustCompile(`nserver:\s*(.+)`),
	regexp.MustCompile(`NS:\s*(.+)`),
	regexp.MustCompile(`Nameservers:\s*(.+)`),
}

var statusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Domain Status:\s*(.+)`),
	regexp.MustCompile(`Status:\s*(.+)`),
	regexp.MustCompile(`state:\s*(.+)`),
}

// ParseWhoisText builds a record from command-line WHOIS output. The raw
// text is kept whether or not any field matched.
func ParseWhoisText(name, raw string) *domain.WhoisRecord {
	values := make(map[whoisField]string, 5)
	for _, fp := range singleValuePatterns {
		if _, found := values[fp.field]; found {
			continue
		}
		if m := fp.pattern.FindStringSubmatch(raw); m != nil {
			values[fp.field] = strings.TrimSpace(m[1])
		}
	}

	return &domain.WhoisRecord{
		Domain:        name,
		Registrar:     values[fieldRegistrar],
		Registrant:    values[fieldRegistrant],
		CreationDate:  values[fieldCreationDate],
		ExpiryDate:    values[fieldExpiryDate],
		UpdatedDate:   values[fieldUpdatedDate],
		NameServers:   collectAll(raw, nameServerPatterns, strings.ToLower),
		Status:        collectAll(raw, statusPatterns, nil),
		RawData:       raw,
		RDAPAvailable: false,
	}
}

// collectAll gathers every match of every pattern, in pattern order, without duplicates
func collectAll(raw string, patterns []*regexp.Regexp, transform func(string) string) []string {
	values := []string{}
	seen := make(map[string]struct{})
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(raw, -1) {
			v := strings.TrimSpace(m[1])
			if transform != nil {
				v = transform(v)
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	return values
}
