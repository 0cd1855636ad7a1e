package congress

import (
	"context"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	legdomain "github.com/civicsignal/repalign/internal/domain/legislator"
	"github.com/civicsignal/repalign/pkg/congress"
)

// memberClient describes the subset of the Congress.gov client used by the provider.
type memberClient interface {
	Members(ctx context.Context, stateCode, district string) ([]congress.Member, error)
}

// Provider implements legislator.CongressProvider using the Congress.gov API
type Provider struct {
	client memberClient
}

// NewProvider builds a Congress.gov provider
func NewProvider(client memberClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("congress provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "congress.gov"
}

// Members returns the normalized federal delegation for a state
func (p *Provider) Members(ctx context.Context, stateCode, district string) ([]domain.Legislator, error) {
	members, err := p.client.Members(ctx, stateCode, district)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Legislator, 0, len(members))
	for _, m := range members {
		if m.Name == "" {
			continue
		}
		out = append(out, Normalize(m))
	}
	return out, nil
}

// Normalize maps one raw member record into the canonical shape. Federal
// records always use jurisdiction "Federal"; congress is the fallback level
// when the chamber field is absent.
func Normalize(m congress.Member) domain.Legislator {
	leg := domain.Legislator{
		ID:           m.ID,
		Name:         m.Name,
		LastName:     domain.NormalizeLastName(m.Name),
		Party:        m.Party,
		District:     m.District,
		Jurisdiction: domain.JurisdictionFederal,
		Level:        domain.LevelCongress,
		PhotoURL:     m.ImageURL,
		Website:      m.Website,
	}
	if leg.Party == "" {
		leg.Party = "Unknown"
	}

	leg.Office = resolveOffice(m)
	leg.Chamber = legdomain.ChamberFromOffice(leg.Office)

	return leg
}

func resolveOffice(m congress.Member) string {
	if legdomain.IsSenateOffice(m.Chamber) {
		return "U.S. Senator"
	}
	if m.Chamber != "" || m.District != "" {
		return "U.S. Representative"
	}
	return "Member of Congress"
}
