package census

import (
	"context"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/geocode"
)

// geocodeClient describes the subset of the Census client used by the provider.
type geocodeClient interface {
	Geocode(ctx context.Context, address string) (geocode.Result, error)
}

// Provider implements legislator.Geocoder using the Census geocoder
type Provider struct {
	client geocodeClient
}

// NewProvider builds a Census geocoding provider
func NewProvider(client geocodeClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("census provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Geocode resolves a street address to a location
func (p *Provider) Geocode(ctx context.Context, address string) (domain.Location, error) {
	res, err := p.client.Geocode(ctx, address)
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{
		Lat:   res.Lat,
		Lng:   res.Lng,
		State: res.State,
	}, nil
}
