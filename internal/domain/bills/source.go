package bills

import (
	"context"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
)

// Source is a keyword-scoped bill search backend
type Source interface {
	Name() string
	BillsBySubject(ctx context.Context, jurisdiction, keyword string, limit int) ([]domain.Bill, error)
}

// Route returns a Source that dispatches on jurisdiction: "Federal" queries go
// to the congressional backend, everything else to the state backend.
func Route(federal, state Source) (Source, error) {
	if federal == nil || state == nil {
		return nil, fmt.Errorf("bills: both federal and state sources are required")
	}
	return &routedSource{federal: federal, state: state}, nil
}

type routedSource struct {
	federal Source
	state   Source
}

func (r *routedSource) Name() string {
	return "routed"
}

func (r *routedSource) BillsBySubject(ctx context.Context, jurisdiction, keyword string, limit int) ([]domain.Bill, error) {
	if jurisdiction == domain.JurisdictionFederal {
		return r.federal.BillsBySubject(ctx, jurisdiction, keyword, limit)
	}
	return r.state.BillsBySubject(ctx, jurisdiction, keyword, limit)
}
