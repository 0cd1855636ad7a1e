package alignment

import (
	"github.com/civicsignal/repalign/internal/domain"
)

// Scorer computes per-legislator alignment against an issue's bill set
type Scorer struct {
	overrides Overrides
}

// NewScorer builds a scorer with the injected override tables
func NewScorer(overrides Overrides) *Scorer {
	return &Scorer{overrides: overrides}
}

// Score counts the bills attributable to a legislator through sponsorship.
// Overrides for the (legislator, issue) pair are applied before scoring. A
// sponsorship matches on case-insensitive substring containment in either
// direction against the legislator's normalized last name; a bill counts at
// most once no matter how many of its sponsorships match.
func (s *Scorer) Score(leg domain.Legislator, issueID string, fetched []domain.Bill) domain.AlignmentResult {
	bills := s.overrides.Apply(leg.Name, issueID, fetched)

	result := domain.AlignmentResult{TotalBills: len(bills)}
	for _, bill := range bills {
		if sponsored(bill, leg) {
			result.SponsoredCount++
			result.MatchedBills = append(result.MatchedBills, bill)
		}
	}
	return result
}

func sponsored(bill domain.Bill, leg domain.Legislator) bool {
	for _, sp := range bill.Sponsorships {
		if domain.NameMatches(sp.Name, leg.LastName) {
			return true
		}
	}
	return false
}
