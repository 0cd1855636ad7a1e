package congress

import (
	"context"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/congress"
)

// billClient describes the subset of the Congress.gov client used for bill search.
type billClient interface {
	SearchBills(ctx context.Context, query string, limit int) ([]congress.Bill, error)
}

// BillSource adapts Congress.gov bill search to the bills.Source contract.
// The jurisdiction argument is accepted for interface symmetry; every query
// here is federal.
type BillSource struct {
	client billClient
}

// NewBillSource builds a Congress.gov bill source
func NewBillSource(client billClient) (*BillSource, error) {
	if client == nil {
		return nil, fmt.Errorf("congress bill source: client is required")
	}
	return &BillSource{client: client}, nil
}

// Name returns source identifier
func (s *BillSource) Name() string {
	return "congress.gov"
}

// BillsBySubject returns normalized federal bills matching a keyword
func (s *BillSource) BillsBySubject(ctx context.Context, _ string, keyword string, limit int) ([]domain.Bill, error) {
	found, err := s.client.SearchBills(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Bill, 0, len(found))
	for _, b := range found {
		bill := domain.Bill{
			Identifier: b.Identifier,
			Title:      b.Title,
			RecordID:   b.RecordID,
		}
		for _, sp := range b.Sponsors {
			bill.Sponsorships = append(bill.Sponsorships, domain.Sponsorship{
				Name:    sp.Name,
				Primary: sp.Primary,
			})
		}
		out = append(out, bill)
	}
	return out, nil
}
