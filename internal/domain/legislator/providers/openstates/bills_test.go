package openstates

import (
	"context"
	"errors"
	"testing"

	"github.com/civicsignal/repalign/pkg/openstates"
)

type fakeBillClient struct {
	bills []openstates.Bill
	err   error
}

func (f *fakeBillClient) SearchBills(_ context.Context, _, _ string, _ int) ([]openstates.Bill, error) {
	return f.bills, f.err
}

func TestBillsBySubjectNormalizes(t *testing.T) {
	client := &fakeBillClient{
		bills: []openstates.Bill{
			{
				RecordID:   "ocd-bill/1",
				Identifier: "S 2202",
				Title:      "An Act relative to coverage",
				Sponsors: []openstates.Sponsor{
					{Name: "Jane Doe", Primary: true},
				},
				Votes: []openstates.Vote{
					{Voter: "John Roe", Option: "nay"},
				},
			},
		},
	}

	src, err := NewBillSource(client)
	if err != nil {
		t.Fatalf("NewBillSource: %v", err)
	}

	bills, err := src.BillsBySubject(context.Background(), "Massachusetts", "health insurance", 20)
	if err != nil {
		t.Fatalf("BillsBySubject: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("got %d bills, want 1", len(bills))
	}

	bill := bills[0]
	if bill.RecordID != "ocd-bill/1" || bill.Identifier != "S 2202" {
		t.Errorf("bill = %+v", bill)
	}
	if len(bill.Sponsorships) != 1 || bill.Sponsorships[0].Name != "Jane Doe" || !bill.Sponsorships[0].Primary {
		t.Errorf("Sponsorships = %+v", bill.Sponsorships)
	}
	if len(bill.Votes) != 1 || bill.Votes[0].Voter != "John Roe" || bill.Votes[0].Position != "nay" {
		t.Errorf("Votes = %+v", bill.Votes)
	}
}

func TestBillsBySubjectPropagatesError(t *testing.T) {
	src, err := NewBillSource(&fakeBillClient{err: errors.New("rate limited")})
	if err != nil {
		t.Fatalf("NewBillSource: %v", err)
	}
	if _, err := src.BillsBySubject(context.Background(), "Massachusetts", "medicaid", 20); err == nil {
		t.Fatal("BillsBySubject succeeded, want error")
	}
}
