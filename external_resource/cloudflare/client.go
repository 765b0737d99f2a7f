package cloudflare

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cloudflare/cloudflare-go"
)

// cloudflareClient implements the Client interface using cloudflare-go SDK
type cloudflareClient struct {
	api *cloudflare.API
}

// NewClient creates a new Cloudflare client using API token
func NewClient(apiToken string, httpClient *http.Client) (Client, error) {
	api, err := cloudflare.NewWithAPIToken(apiToken, options(httpClient)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
	}

	return &cloudflareClient{
		api: api,
	}, nil
}

// NewClientWithKey creates a new Cloudflare client using API key and email
func NewClientWithKey(apiKey, email string, httpClient *http.Client) (Client, error) {
	api, err := cloudflare.New(apiKey, email, options(httpClient)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
	}

	return &cloudflareClient{
		api: api,
	}, nil
}

func options(httpClient *http.Client) []cloudflare.Option {
	if httpClient == nil {
		return nil
	}
	return []cloudflare.Option{cloudflare.HTTPClient(httpClient)}
}

// ListZones returns all zones accessible by the client
func (c *cloudflareClient) ListZones(ctx context.Context) ([]Zone, error) {
	log.Printf("[CloudflareClient] ListZones START")
	zones, err := c.api.ListZones(ctx)
	if err != nil {
		log.Printf("[CloudflareClient] ListZones ERROR: %v", err)
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	log.Printf("[CloudflareClient] ListZones SUCCESS: found %d zones", len(zones))

	result := make([]Zone, len(zones))
	for i, z := range zones {
		result[i] = mapCloudflareZone(z)
	}

	return result, nil
}

// GetZoneByName returns a zone by its name
func (c *cloudflareClient) GetZoneByName(ctx context.Context, name string) (*Zone, error) {
	log.Printf("[CloudflareClient] GetZoneByName START name=%s", name)
	zoneID, err := c.api.ZoneIDByName(name)
	if err != nil {
		log.Printf("[CloudflareClient] GetZoneByName ERROR: %v", err)
		return nil, fmt.Errorf("failed to get zone by name %s: %w", name, err)
	}

	zone, err := c.api.ZoneDetails(ctx, zoneID)
	if err != nil {
		log.Printf("[CloudflareClient] GetZoneByName ERROR: %v", err)
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}
	log.Printf("[CloudflareClient] GetZoneByName SUCCESS: zoneID=%s", zoneID)

	result := mapCloudflareZone(zone)
	return &result, nil
}

// mapCloudflareZone maps cloudflare-go Zone to our Zone
func mapCloudflareZone(z cloudflare.Zone) Zone {
	return Zone{
		ID:          z.ID,
		Name:        z.Name,
		Status:      z.Status,
		NameServers: z.NameServers,
	}
}
