package rdap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDomain(t *testing.T, body string) *Domain {
	t.Helper()
	var doc Domain
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	doc.Raw = json.RawMessage(body)
	return &doc
}

func TestDomainExtraction(t *testing.T) {
	doc := decodeDomain(t, exampleDomain)

	created, ok := doc.CreationDate()
	assert.True(t, ok)
	assert.Equal(t, "1995-08-14T04:00:00Z", created)

	expires, ok := doc.ExpirationDate()
	assert.True(t, ok)
	assert.Equal(t, "2026-08-13T04:00:00Z", expires)

	updated, ok := doc.UpdatedDate()
	assert.True(t, ok)
	assert.Equal(t, "2024-08-14T07:01:34Z", updated)

	registrar, ok := doc.Registrar()
	assert.True(t, ok)
	assert.Equal(t, "RESERVED-Internet Assigned Numbers Authority", registrar)

	assert.Equal(t, []string{"A.IANA-SERVERS.NET", "B.IANA-SERVERS.NET"}, doc.NameServerNames())
	assert.Equal(t, []string{"client delete prohibited", "client transfer prohibited"}, doc.Statuses())
}

func TestDomainExtractionFallbacks(t *testing.T) {
	doc := decodeDomain(t, `{
		"events": [
			{"eventAction": "last changed", "eventDate": "2020-01-01T00:00:00Z"},
			{"eventAction": "last update of RDAP database", "eventDate": "2025-01-01T00:00:00Z"}
		],
		"entities": [{"handle": "292", "roles": ["registrar"]}]
	}`)

	created, ok := doc.CreationDate()
	assert.True(t, ok)
	assert.Equal(t, "2020-01-01T00:00:00Z", created)

	_, ok = doc.ExpirationDate()
	assert.False(t, ok)

	registrar, ok := doc.Registrar()
	assert.True(t, ok)
	assert.Equal(t, "292", registrar)
}

func TestCreationDateFollowsEventOrder(t *testing.T) {
	doc := decodeDomain(t, `{
		"events": [
			{"eventAction": "expiration", "eventDate": "2030-01-01T00:00:00Z"},
			{"eventAction": "last changed", "eventDate": "2021-03-04T00:00:00Z"},
			{"eventAction": "registration", "eventDate": "2001-02-03T00:00:00Z"}
		]
	}`)

	created, ok := doc.CreationDate()
	assert.True(t, ok)
	assert.Equal(t, "2021-03-04T00:00:00Z", created)
}

func TestDomainExtractionEmpty(t *testing.T) {
	doc := decodeDomain(t, `{"objectClassName":"domain"}`)

	_, ok := doc.CreationDate()
	assert.False(t, ok)
	_, ok = doc.UpdatedDate()
	assert.False(t, ok)
	_, ok = doc.Registrar()
	assert.False(t, ok)
	assert.Empty(t, doc.NameServerNames())
	assert.NotNil(t, doc.Statuses())
}

func TestUpdatedDateDatabaseFallback(t *testing.T) {
	doc := decodeDomain(t, `{"events":[{"eventAction":"last update of RDAP database","eventDate":"2025-01-01T00:00:00Z"}]}`)

	updated, ok := doc.UpdatedDate()
	assert.True(t, ok)
	assert.Equal(t, "2025-01-01T00:00:00Z", updated)
}

func TestEntityFullNameMalformedVCard(t *testing.T) {
	tests := []struct {
		name  string
		vcard string
	}{
		{name: "not an array", vcard: `"vcard"`},
		{name: "missing properties", vcard: `["vcard"]`},
		{name: "short property", vcard: `["vcard", [["fn", {}]]]`},
		{name: "non string value", vcard: `["vcard", [["fn", {}, "text", 42]]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{VCardArray: json.RawMessage(tt.vcard)}
			assert.Empty(t, e.FullName())
		})
	}
}

func TestIndented(t *testing.T) {
	doc := decodeDomain(t, `{"ldhName":"EXAMPLE.COM","status":["active"]}`)

	indented := doc.Indented()
	assert.True(t, strings.Contains(indented, "\n  \"ldhName\": \"EXAMPLE.COM\""))
	assert.JSONEq(t, string(doc.Raw), indented)
}
