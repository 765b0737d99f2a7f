package repository

import (
	"context"
	"fmt"
	"log"

	"domain-mcp/external_resource/cloudflare"
	"domain-mcp/internal/domain"
)

// zoneRepository implements ZoneRepository using Cloudflare client
type zoneRepository struct {
	client cloudflare.Client
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(client cloudflare.Client) ZoneRepository {
	return &zoneRepository{
		client: client,
	}
}

// ListZones returns all accessible zones
func (r *zoneRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	zones, err := r.client.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Zone, len(zones))
	for i, z := range zones {
		result[i] = mapZone(z)
	}

	return result, nil
}

// GetZoneByName returns a zone by its name
func (r *zoneRepository) GetZoneByName(ctx context.Context, name string) (*domain.Zone, error) {
	log.Printf("[GetZoneByName] START name=%s", name)
	zone, err := r.client.GetZoneByName(ctx, name)
	if err != nil {
		log.Printf("[GetZoneByName] ERROR: %v", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrZoneNotFound, name, err)
	}
	log.Printf("[GetZoneByName] SUCCESS: ID=%s, Name=%s", zone.ID, zone.Name)

	result := mapZone(*zone)
	return &result, nil
}

func mapZone(z cloudflare.Zone) domain.Zone {
	return domain.Zone{
		ID:     z.ID,
		Name:   z.Name,
		Status: z.Status,
	}
}
