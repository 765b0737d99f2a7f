// Package httpclient builds the outbound HTTP client shared by every upstream adapter.
package httpclient

import (
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// Options configures a client
type Options struct {
	// Timeout bounds each attempt. Zero means no timeout.
	Timeout time.Duration
	// RetryMax is the number of retries after the first attempt.
	RetryMax int
	// RateLimit is the maximum requests per second across the client. Zero disables limiting.
	RateLimit float64
	// UserAgent is sent when the request does not set its own.
	UserAgent string
}

// New creates an *http.Client backed by a pooled transport with retries,
// an optional rate limiter and a public-suffix aware cookie jar.
func New(opts Options) *http.Client {
	var transport http.RoundTripper = cleanhttp.DefaultPooledTransport()
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		transport = &limitedTransport{
			base:    transport,
			limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), burst),
		}
	}
	if opts.UserAgent != "" {
		transport = &userAgentTransport{base: transport, userAgent: opts.UserAgent}
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Printf("[HTTPClient] WARNING: cookie jar disabled: %v", err)
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
		Jar:       jar,
	}
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = nil

	return rc.StandardClient()
}

// limitedTransport waits on a shared limiter before every round trip
type limitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// userAgentTransport sets a default User-Agent header
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
