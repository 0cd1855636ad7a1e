package openstates

import (
	"context"
	"errors"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	legdomain "github.com/civicsignal/repalign/internal/domain/legislator"
	"github.com/civicsignal/repalign/pkg/openstates"
)

// peopleClient describes the subset of the OpenStates client used by the provider.
type peopleClient interface {
	PeopleByLocation(ctx context.Context, lat, lng float64) ([]openstates.Person, error)
	People(ctx context.Context, jurisdiction string) ([]openstates.Person, error)
}

// Provider implements legislator.StateProvider using the OpenStates API
type Provider struct {
	client peopleClient
}

// NewProvider builds an OpenStates provider
func NewProvider(client peopleClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("openstates provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "openstates"
}

// ByLocation returns normalized officials whose districts contain a coordinate
func (p *Provider) ByLocation(ctx context.Context, lat, lng float64) ([]domain.Legislator, error) {
	people, err := p.client.PeopleByLocation(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return p.normalize(people), nil
}

// ByJurisdiction returns the normalized full roster for a jurisdiction
func (p *Provider) ByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.Legislator, error) {
	people, err := p.client.People(ctx, jurisdiction)
	if err != nil {
		return nil, err
	}
	return p.normalize(people), nil
}

func (p *Provider) normalize(people []openstates.Person) []domain.Legislator {
	out := make([]domain.Legislator, 0, len(people))
	for _, person := range people {
		if person.Name == "" {
			// missing identity is the only drop condition
			continue
		}
		leg, err := Normalize(person)
		if errors.Is(err, legdomain.ErrMissingOffice) {
			// keep the record; state level is this provider's fallback
			leg.Level = domain.LevelState
		}
		out = append(out, leg)
	}
	return out
}

// Normalize maps one raw OpenStates person into the canonical shape. A record
// without office information is still returned, tagged with ErrMissingOffice so
// the caller decides its effective level.
func Normalize(person openstates.Person) (domain.Legislator, error) {
	leg := domain.Legislator{
		ID:           person.ID,
		Name:         person.Name,
		LastName:     domain.NormalizeLastName(person.Name),
		Party:        person.Party,
		District:     person.District,
		Jurisdiction: person.Jurisdiction,
		PhotoURL:     person.Image,
		Phones:       person.Phones,
		Website:      person.Website,
	}
	if leg.Party == "" {
		leg.Party = "Unknown"
	}
	if person.Email != "" {
		leg.Emails = []string{person.Email}
	}

	office := resolveOffice(person)
	if office == "" {
		return leg, legdomain.ErrMissingOffice
	}
	leg.Office = office
	leg.Chamber = legdomain.ChamberFromOffice(office)

	switch person.Chamber {
	case "executive":
		leg.Level = domain.LevelExecutive
	default:
		leg.Level = domain.LevelState
	}

	return leg, nil
}

func resolveOffice(person openstates.Person) string {
	if person.Title != "" {
		return person.Title
	}
	switch person.Chamber {
	case "upper":
		return "State Senator"
	case "lower":
		return "State Representative"
	case "executive":
		return "Governor"
	}
	return ""
}
