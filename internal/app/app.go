// Package app wires configuration into the use cases shared by every binary.
package app

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"domain-mcp/external_resource/cloudflare"
	"domain-mcp/external_resource/doh"
	"domain-mcp/external_resource/feeds"
	"domain-mcp/external_resource/rdap"
	"domain-mcp/external_resource/tlsinspect"
	"domain-mcp/external_resource/whois"
	"domain-mcp/internal/handler/mcptools"
	"domain-mcp/internal/metrics"
	"domain-mcp/internal/repository"
	"domain-mcp/internal/usecase"
	"domain-mcp/pkg/config"
	"domain-mcp/pkg/httpclient"
)

const (
	dohTimeout        = 10 * time.Second
	tlsTimeout        = 10 * time.Second
	cloudflareTimeout = 30 * time.Second
)

// App holds the wired use cases
type App struct {
	Config    *config.Config
	Domain    usecase.DomainUsecase
	Portfolio usecase.PortfolioUsecase
	Tools     *mcptools.Registry
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
}

// Build wires every upstream adapter, repository and use case from cfg
func Build(cfg *config.Config) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	client := func(timeout time.Duration) *http.Client {
		return httpclient.New(httpclient.Options{
			Timeout:   timeout,
			RetryMax:  cfg.HTTPRetryMax,
			RateLimit: cfg.HTTPRateLimit,
			UserAgent: cfg.UserAgent,
		})
	}

	// DNS over HTTPS
	var dohClient doh.Client
	switch cfg.DoHMode {
	case config.DoHModeWire:
		dohClient = doh.NewWireClient(client(dohTimeout), cfg.DoHURL)
	default:
		dohClient = doh.NewJSONClient(client(dohTimeout), cfg.DoHURL)
	}
	dnsRepo := repository.NewDNSRepository(dohClient, m)

	// RDAP with bootstrap discovery
	rdapHTTP := client(cfg.RDAPTimeout)
	var discoverer rdap.Discoverer
	switch cfg.RDAPBootstrapMode {
	case config.BootstrapModeIANA:
		discoverer = rdap.NewIANADiscoverer(rdapHTTP, nil)
	default:
		discoverer = rdap.NewServiceDiscoverer(rdapHTTP, cfg.RDAPBootstrapURL)
	}
	rdapClient := rdap.NewClient(rdapHTTP, rdap.DefaultDirectory(), discoverer)

	// WHOIS fallback
	var runner whois.Runner
	switch cfg.WhoisMode {
	case config.WhoisModeNative:
		runner = whois.NewNativeRunner(cfg.WhoisTimeout)
	default:
		runner = whois.NewExecRunner(cfg.WhoisBinary, cfg.WhoisTimeout)
	}
	whoisRepo := repository.NewWhoisRepository(rdapClient, runner, m)

	// Expired domain feeds, queried in order
	feedHTTP := client(cfg.FeedTimeout)
	expiredRepo := repository.NewExpiredRepository([]feeds.Source{
		feeds.NewDomainsDB(feedHTTP, feeds.DomainsDBURL),
		feeds.NewDynadot(feedHTTP, feeds.DynadotURL),
		feeds.NewNameJet(feedHTTP, feeds.NameJetURLs),
		feeds.NewSnapNames(feedHTTP, feeds.SnapNamesURL),
	}, m)

	domainUC := usecase.NewDomainUsecase(whoisRepo, dnsRepo, expiredRepo, tlsinspect.NewInspector(tlsTimeout), m)

	var zoneRepo repository.ZoneRepository
	if cfg.PortfolioEnabled() {
		cf, err := newCloudflareClient(cfg, client(cloudflareTimeout))
		if err != nil {
			return nil, err
		}
		zoneRepo = repository.NewZoneRepository(cf)
		log.Println("[App] Cloudflare portfolio enabled")
	}
	portfolioUC := usecase.NewPortfolioUsecase(zoneRepo, whoisRepo, dnsRepo)

	return &App{
		Config:    cfg,
		Domain:    domainUC,
		Portfolio: portfolioUC,
		Tools:     mcptools.NewRegistry(domainUC, portfolioUC, m),
		Metrics:   m,
		Registry:  reg,
	}, nil
}

func newCloudflareClient(cfg *config.Config, httpClient *http.Client) (cloudflare.Client, error) {
	if cfg.UseAPIToken() {
		log.Println("[App] Using Cloudflare API Token authentication")
		client, err := cloudflare.NewClient(cfg.CloudflareAPIToken, httpClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
		}
		return client, nil
	}

	log.Println("[App] Using Cloudflare API Key + Email authentication")
	client, err := cloudflare.NewClientWithKey(cfg.CloudflareAPIKey, cfg.CloudflareEmail, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
	}
	return client, nil
}
