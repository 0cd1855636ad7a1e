package alignment

import (
	"testing"

	"github.com/civicsignal/repalign/internal/domain"
)

func warren() domain.Legislator {
	return domain.Legislator{Name: "Elizabeth Warren", LastName: "warren"}
}

func TestScoreCountsSponsoredBills(t *testing.T) {
	bills := []domain.Bill{
		{
			Identifier: "S 100",
			RecordID:   "r-100",
			Sponsorships: []domain.Sponsorship{
				{Name: "Elizabeth Warren", Primary: true},
			},
		},
		{
			Identifier: "S 101",
			RecordID:   "r-101",
			Sponsorships: []domain.Sponsorship{
				{Name: "Edward Markey", Primary: true},
			},
		},
		{
			Identifier: "S 102",
			RecordID:   "r-102",
			Sponsorships: []domain.Sponsorship{
				{Name: "Warren, Elizabeth", Primary: false},
			},
		},
	}

	result := NewScorer(Overrides{}).Score(warren(), "healthcare", bills)

	if result.TotalBills != 3 {
		t.Errorf("TotalBills = %d, want 3", result.TotalBills)
	}
	if result.SponsoredCount != 2 {
		t.Errorf("SponsoredCount = %d, want 2", result.SponsoredCount)
	}
	if len(result.MatchedBills) != 2 {
		t.Errorf("MatchedBills has %d entries, want 2", len(result.MatchedBills))
	}
}

func TestScoreBillCountsAtMostOnce(t *testing.T) {
	bills := []domain.Bill{
		{
			Identifier: "S 100",
			RecordID:   "r-100",
			Sponsorships: []domain.Sponsorship{
				{Name: "Elizabeth Warren", Primary: true},
				{Name: "Warren, Elizabeth", Primary: false}, // same official twice
			},
		},
	}

	result := NewScorer(Overrides{}).Score(warren(), "healthcare", bills)
	if result.SponsoredCount != 1 {
		t.Errorf("SponsoredCount = %d, want 1 despite two matching sponsorships", result.SponsoredCount)
	}
}

func TestScoreAppliesExclusions(t *testing.T) {
	overrides := Overrides{
		Exclusions: map[string]map[string][]string{
			"Elizabeth Warren": {
				"healthcare": {"S. 100"}, // normalized match against "S 100"
			},
		},
	}

	bills := []domain.Bill{
		{
			Identifier:   "S 100",
			RecordID:     "r-100",
			Sponsorships: []domain.Sponsorship{{Name: "Elizabeth Warren"}},
		},
	}

	result := NewScorer(overrides).Score(warren(), "healthcare", bills)
	if result.SponsoredCount != 0 {
		t.Errorf("SponsoredCount = %d, want 0 after exclusion", result.SponsoredCount)
	}
	if result.TotalBills != 0 {
		t.Errorf("TotalBills = %d, want 0 after exclusion", result.TotalBills)
	}
}

func TestScoreAppliesAdditions(t *testing.T) {
	overrides := Overrides{
		Associations: map[string]map[string][]CuratedBill{
			"Elizabeth Warren": {
				"healthcare": {{Identifier: "S 999", Title: "Curated Act"}},
			},
		},
	}

	result := NewScorer(overrides).Score(warren(), "healthcare", nil)
	if result.SponsoredCount != 1 {
		t.Errorf("SponsoredCount = %d, want 1 from the curated addition", result.SponsoredCount)
	}
}

func TestScoreOverridesArePerPair(t *testing.T) {
	overrides := Overrides{
		Exclusions: map[string]map[string][]string{
			"Elizabeth Warren": {
				"healthcare": {"S 100"},
			},
		},
	}
	scorer := NewScorer(overrides)

	bills := []domain.Bill{
		{
			Identifier: "S 100",
			RecordID:   "r-100",
			Sponsorships: []domain.Sponsorship{
				{Name: "Elizabeth Warren"},
				{Name: "Edward Markey"},
			},
		},
	}

	// excluded for Warren's view only
	if got := scorer.Score(warren(), "healthcare", bills); got.SponsoredCount != 0 {
		t.Errorf("Warren SponsoredCount = %d, want 0", got.SponsoredCount)
	}

	markey := domain.Legislator{Name: "Edward Markey", LastName: "markey"}
	if got := scorer.Score(markey, "healthcare", bills); got.SponsoredCount != 1 {
		t.Errorf("Markey SponsoredCount = %d, want 1; exclusion leaked across legislators", got.SponsoredCount)
	}

	// and for the healthcare issue only
	if got := scorer.Score(warren(), "climate", bills); got.SponsoredCount != 1 {
		t.Errorf("climate SponsoredCount = %d, want 1; exclusion leaked across issues", got.SponsoredCount)
	}
}
