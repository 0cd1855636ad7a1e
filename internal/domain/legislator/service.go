package legislator

import (
	"context"
	"errors"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/logging"
)

// ErrNoOfficials indicates a resolved location yielded no officials at all
var ErrNoOfficials = errors.New("legislator: no officials found for location")

// ErrAddressNotFound indicates the address could not be geocoded
var ErrAddressNotFound = errors.New("legislator: address could not be resolved")

// Service resolves addresses and jurisdictions to legislator slates
type Service struct {
	geocoder Geocoder
	states   StateProvider
	congress CongressProvider
	logger   *logging.Logger
}

// NewService builds a lookup service from its providers
func NewService(geocoder Geocoder, states StateProvider, congress CongressProvider, logger *logging.Logger) (*Service, error) {
	if geocoder == nil {
		return nil, fmt.Errorf("legislator.Service: geocoder is required")
	}
	if states == nil {
		return nil, fmt.Errorf("legislator.Service: state provider is required")
	}
	if congress == nil {
		return nil, fmt.Errorf("legislator.Service: congress provider is required")
	}
	return &Service{
		geocoder: geocoder,
		states:   states,
		congress: congress,
		logger:   logger,
	}, nil
}

// LocalResult is the outcome of the address-scoped wave of a search
type LocalResult struct {
	Slate        []domain.Legislator
	Jurisdiction string // full state name
	StateCode    string
	Location     domain.Location
}

// Local performs the address-scoped lookup: geocode, federal delegation, and
// the officials whose districts contain the coordinate. When the coordinate
// lookup returns nothing, the jurisdiction roster serves as the sole state
// path. Resolution failures block all downstream work; there is no partial
// slate.
func (s *Service) Local(ctx context.Context, address string) (LocalResult, error) {
	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return LocalResult{}, fmt.Errorf("%w: %v", ErrAddressNotFound, err)
	}

	jurisdiction := domain.StateName(loc.State)

	var slate []domain.Legislator

	federal, err := s.congress.Members(ctx, loc.State, "")
	if err != nil {
		s.logger.Warn("congress member lookup failed", "state", loc.State, "err", err)
	} else {
		slate = append(slate, federal...)
	}

	state, err := s.states.ByLocation(ctx, loc.Lat, loc.Lng)
	if err != nil {
		s.logger.Warn("coordinate lookup failed, falling back to roster",
			"provider", s.states.Name(), "err", err)
		state = nil
	}
	if len(state) == 0 {
		state, err = s.states.ByJurisdiction(ctx, jurisdiction)
		if err != nil {
			s.logger.Warn("jurisdiction roster lookup failed", "jurisdiction", jurisdiction, "err", err)
			state = nil
		}
	}
	slate = append(slate, state...)

	if len(slate) == 0 {
		return LocalResult{}, ErrNoOfficials
	}

	return LocalResult{
		Slate:        slate,
		Jurisdiction: jurisdiction,
		StateCode:    loc.State,
		Location:     loc,
	}, nil
}

// Roster fetches the full jurisdiction-wide roster for the background fill
func (s *Service) Roster(ctx context.Context, jurisdiction string) ([]domain.Legislator, error) {
	if jurisdiction == "" {
		return nil, fmt.Errorf("legislator.Service: jurisdiction is required")
	}
	return s.states.ByJurisdiction(ctx, jurisdiction)
}
