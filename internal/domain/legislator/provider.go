package legislator

import (
	"context"
	"errors"
	"strings"

	"github.com/civicsignal/repalign/internal/domain"
)

// ErrMissingOffice signals that a raw record carried no office information.
// Normalizers never drop such records; each provider picks its own fallback
// level and surfaces this error so the caller can decide what to do with it.
var ErrMissingOffice = errors.New("legislator: record has no office information")

// Geocoder resolves a street address to a location
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Location, error)
}

// StateProvider is the state-legislature data source. ByLocation is the
// address-scoped lookup; ByJurisdiction is the slow roster used for the
// background fill and as the sole path when the coordinate lookup is empty.
type StateProvider interface {
	Name() string
	ByLocation(ctx context.Context, lat, lng float64) ([]domain.Legislator, error)
	ByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.Legislator, error)
}

// CongressProvider is the federal-delegation data source
type CongressProvider interface {
	Name() string
	Members(ctx context.Context, stateCode, district string) ([]domain.Legislator, error)
}

// IsSenateOffice reports whether an office title names an upper-chamber role.
// Case-insensitive substring test per the record contract: "State Senator",
// "Senate Majority Leader" and "U.S. Senator" all classify as upper.
func IsSenateOffice(office string) bool {
	s := strings.ToLower(office)
	return strings.Contains(s, "senator") || strings.Contains(s, "senate")
}

// ChamberFromOffice classifies an office title as "upper" or "lower"
func ChamberFromOffice(office string) string {
	if IsSenateOffice(office) {
		return "upper"
	}
	return "lower"
}
