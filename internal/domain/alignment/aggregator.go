package alignment

import (
	"sort"
	"strings"

	"github.com/civicsignal/repalign/internal/domain"
)

// TopSupporters scores every legislator in the slate against an issue's bill
// set and ranks those with at least one sponsorship, descending by count. The
// sort is stable: ties keep slate order. A positive limit takes a fixed-size
// prefix; limit <= 0 returns the full ranking.
func TopSupporters(scorer *Scorer, slate []domain.Legislator, issueID string, bills []domain.Bill, limit int) []domain.RankedSupporter {
	var ranked []domain.RankedSupporter
	for _, leg := range slate {
		result := scorer.Score(leg, issueID, bills)
		if result.SponsoredCount > 0 {
			ranked = append(ranked, domain.RankedSupporter{
				Legislator:     leg,
				SponsoredCount: result.SponsoredCount,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SponsoredCount > ranked[j].SponsoredCount
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Opposed aggregates recorded nay votes across the bill set, matching each
// voter's recorded name against slate legislators with the same substring
// heuristic as sponsorship scoring. Only meaningful where bills carry
// roll-call data; bills without votes contribute nothing.
func Opposed(slate []domain.Legislator, bills []domain.Bill) []domain.Opposition {
	counts := make(map[int]int)
	for _, bill := range bills {
		for _, vote := range bill.Votes {
			if !isNay(vote.Position) {
				continue
			}
			for i, leg := range slate {
				if domain.NameMatches(vote.Voter, leg.LastName) {
					counts[i]++
				}
			}
		}
	}

	var opposed []domain.Opposition
	for i, leg := range slate {
		if n := counts[i]; n > 0 {
			opposed = append(opposed, domain.Opposition{Legislator: leg, NayCount: n})
		}
	}

	sort.SliceStable(opposed, func(i, j int) bool {
		return opposed[i].NayCount > opposed[j].NayCount
	})
	return opposed
}

func isNay(position string) bool {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case "nay", "no", "n":
		return true
	}
	return false
}
