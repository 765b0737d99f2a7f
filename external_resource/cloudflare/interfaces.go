package cloudflare

import "context"

// Client defines the read-only Cloudflare operations used for the domain portfolio
type Client interface {
	ListZones(ctx context.Context) ([]Zone, error)
	GetZoneByName(ctx context.Context, name string) (*Zone, error)
}

// Zone represents a Cloudflare zone (domain)
type Zone struct {
	ID          string
	Name        string
	Status      string
	NameServers []string
}
