package rdap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDomain = `{
	"objectClassName": "domain",
	"handle": "2336799_DOMAIN_COM-VRSN",
	"ldhName": "EXAMPLE.COM",
	"status": ["client delete prohibited", "client transfer prohibited"],
	"events": [
		{"eventAction": "registration", "eventDate": "1995-08-14T04:00:00Z"},
		{"eventAction": "expiration", "eventDate": "2026-08-13T04:00:00Z"},
		{"eventAction": "last changed", "eventDate": "2024-08-14T07:01:34Z"},
		{"eventAction": "last update of RDAP database", "eventDate": "2025-01-01T00:00:00Z"}
	],
	"entities": [
		{"handle": "ABUSE", "roles": ["abuse"]},
		{
			"handle": "376",
			"roles": ["registrar"],
			"vcardArray": ["vcard", [["version", {}, "text", "4.0"], ["fn", {}, "text", "RESERVED-Internet Assigned Numbers Authority"]]]
		}
	],
	"nameservers": [
		{"objectClassName": "nameserver", "ldhName": "A.IANA-SERVERS.NET"},
		{"objectClassName": "nameserver", "ldhName": "B.IANA-SERVERS.NET"}
	]
}`

type staticDiscoverer struct {
	base  string
	err   error
	calls int
}

func (d *staticDiscoverer) Discover(ctx context.Context, domain string) (string, error) {
	d.calls++
	return d.base, d.err
}

func rdapServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, rdapMediaType, r.Header.Get("Accept"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupStaticDirectory(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(exampleDomain))
	}))
	defer srv.Close()

	discoverer := &staticDiscoverer{err: errors.New("should not be called")}
	client := NewClient(srv.Client(), NewDirectory(map[string]string{"com": srv.URL + "/"}), discoverer)

	doc, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "/domain/example.com", path)
	assert.Equal(t, 0, discoverer.calls)
	assert.Equal(t, "EXAMPLE.COM", doc.LDHName)
	assert.Equal(t, srv.URL+"/", doc.Server)
	assert.JSONEq(t, exampleDomain, string(doc.Raw))
}

func TestLookupFallsBackToBootstrap(t *testing.T) {
	broken := rdapServer(t, http.StatusInternalServerError, "")
	healthy := rdapServer(t, http.StatusOK, exampleDomain)

	discoverer := &staticDiscoverer{base: healthy.URL}
	client := NewClient(http.DefaultClient, NewDirectory(map[string]string{"com": broken.URL}), discoverer)

	doc, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, discoverer.calls)
	assert.Equal(t, healthy.URL, doc.Server)
}

func TestLookupUnknownTLDUsesBootstrap(t *testing.T) {
	healthy := rdapServer(t, http.StatusOK, exampleDomain)

	discoverer := &staticDiscoverer{base: healthy.URL}
	client := NewClient(http.DefaultClient, NewDirectory(nil), discoverer)

	_, err := client.Lookup(context.Background(), "example.zz")
	require.NoError(t, err)
	assert.Equal(t, 1, discoverer.calls)
}

func TestLookupFailures(t *testing.T) {
	notFound := rdapServer(t, http.StatusNotFound, `{"errorCode":404}`)
	malformed := rdapServer(t, http.StatusOK, `{"ldhName":`)

	tests := []struct {
		name       string
		directory  map[string]string
		discoverer Discoverer
	}{
		{
			name:       "bootstrap error",
			discoverer: &staticDiscoverer{err: ErrNoServer},
		},
		{
			name:       "static and bootstrap servers both fail",
			directory:  map[string]string{"com": notFound.URL},
			discoverer: &staticDiscoverer{base: notFound.URL},
		},
		{
			name:       "malformed body",
			discoverer: &staticDiscoverer{base: malformed.URL},
		},
		{
			name:      "no discoverer",
			directory: map[string]string{"com": notFound.URL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(http.DefaultClient, NewDirectory(tt.directory), tt.discoverer)
			doc, err := client.Lookup(context.Background(), "example.com")
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrLookupFailed)
		})
	}
}

func TestDefaultDirectory(t *testing.T) {
	dir := DefaultDirectory()

	base, ok := dir.Lookup("com")
	assert.True(t, ok)
	assert.Equal(t, "https://rdap.verisign.com/com/v1", base)

	base, ok = dir.Lookup("dev")
	assert.True(t, ok)
	assert.Equal(t, "https://rdap.nic.google", base)

	_, ok = dir.Lookup("zz")
	assert.False(t, ok)

	assert.Len(t, dir.TLDs(), 11)
}

func TestNewDirectoryCopiesEntries(t *testing.T) {
	entries := map[string]string{"com": "https://a.example"}
	dir := NewDirectory(entries)
	entries["com"] = "https://b.example"

	base, _ := dir.Lookup("com")
	assert.Equal(t, "https://a.example", base)
}
