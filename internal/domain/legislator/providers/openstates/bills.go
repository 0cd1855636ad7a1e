package openstates

import (
	"context"
	"fmt"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/openstates"
)

// billClient describes the subset of the OpenStates client used for bill search.
type billClient interface {
	SearchBills(ctx context.Context, jurisdiction, query string, limit int) ([]openstates.Bill, error)
}

// BillSource adapts OpenStates bill search to the bills.Source contract
type BillSource struct {
	client billClient
}

// NewBillSource builds an OpenStates bill source
func NewBillSource(client billClient) (*BillSource, error) {
	if client == nil {
		return nil, fmt.Errorf("openstates bill source: client is required")
	}
	return &BillSource{client: client}, nil
}

// Name returns source identifier
func (s *BillSource) Name() string {
	return "openstates"
}

// BillsBySubject returns normalized bills matching a keyword in a jurisdiction
func (s *BillSource) BillsBySubject(ctx context.Context, jurisdiction, keyword string, limit int) ([]domain.Bill, error) {
	found, err := s.client.SearchBills(ctx, jurisdiction, keyword, limit)
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
		for _, v := range b.Votes {
			bill.Votes = append(bill.Votes, domain.VoteRecord{
				Voter:    v.Voter,
				Position: v.Option,
			})
		}
		out = append(out, bill)
	}
	return out, nil
}
