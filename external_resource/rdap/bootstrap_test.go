package rdap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDiscoverer(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"services":[[["zz"],["https://rdap.registry.zz/","http://rdap.registry.zz/"]]]}`))
	}))
	defer srv.Close()

	base, err := NewServiceDiscoverer(srv.Client(), srv.URL+"/bootstrap/domain/").Discover(context.Background(), "example.zz")
	require.NoError(t, err)
	assert.Equal(t, "/bootstrap/domain/example.zz", path)
	assert.Equal(t, "https://rdap.registry.zz/", base)
}

func TestServiceDiscovererNoService(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty services", body: `{"services":[]}`},
		{name: "service without urls", body: `{"services":[[["zz"],[]]]}`},
		{name: "missing services", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewServiceDiscoverer(srv.Client(), srv.URL).Discover(context.Background(), "example.zz")
			assert.ErrorIs(t, err, ErrNoServer)
		})
	}
}

func TestServiceDiscovererStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewServiceDiscoverer(srv.Client(), srv.URL).Discover(context.Background(), "example.zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestServiceDiscovererFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/bootstrap/domain/example.zz", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/registry/rdap/domain/example.zz", http.StatusFound)
	})
	mux.HandleFunc("/registry/rdap/domain/example.zz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(exampleDomain))
	})

	base, err := NewServiceDiscoverer(srv.Client(), srv.URL+"/bootstrap/domain").Discover(context.Background(), "example.zz")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/registry/rdap", base)
}

func TestIANADiscoverer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dns.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{
			"description": "RDAP bootstrap file for Domain Name System registrations",
			"publication": "2025-01-01T00:00:00Z",
			"version": "1.0",
			"services": [
				[["zz"], ["https://rdap.registry.zz/"]]
			]
		}`))
	}))
	defer srv.Close()

	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)

	base, err := NewIANADiscoverer(srv.Client(), baseURL).Discover(context.Background(), "example.zz")
	require.NoError(t, err)
	assert.Equal(t, "https://rdap.registry.zz/", base)
}
