package alignment

import (
	"testing"

	"github.com/civicsignal/repalign/internal/domain"
)

func sponsoredBy(id string, names ...string) domain.Bill {
	bill := domain.Bill{Identifier: id, RecordID: "r-" + id}
	for _, name := range names {
		bill.Sponsorships = append(bill.Sponsorships, domain.Sponsorship{Name: name})
	}
	return bill
}

func TestTopSupportersRanksAndFilters(t *testing.T) {
	slate := []domain.Legislator{
		{Name: "Alice Alpha", LastName: "alpha"},
		{Name: "Bob Beta", LastName: "beta"},
		{Name: "Carol Gamma", LastName: "gamma"},
		{Name: "Dan Delta", LastName: "delta"}, // sponsors nothing
	}
	bills := []domain.Bill{
		sponsoredBy("S 1", "Alice Alpha", "Bob Beta"),
		sponsoredBy("S 2", "Alice Alpha", "Bob Beta"),
		sponsoredBy("S 3", "Alice Alpha", "Bob Beta", "Carol Gamma"),
	}

	ranked := TopSupporters(NewScorer(Overrides{}), slate, "healthcare", bills, 0)

	if len(ranked) != 3 {
		t.Fatalf("ranking has %d entries, want 3 (zero-count officials excluded)", len(ranked))
	}
	// Alice and Bob tie at 3; the stable sort keeps slate order between them
	if ranked[0].Legislator.LastName != "alpha" || ranked[1].Legislator.LastName != "beta" {
		t.Errorf("tie order = [%s %s], want slate order preserved",
			ranked[0].Legislator.LastName, ranked[1].Legislator.LastName)
	}
	if ranked[2].Legislator.LastName != "gamma" || ranked[2].SponsoredCount != 1 {
		t.Errorf("third entry = %s(%d), want gamma(1)",
			ranked[2].Legislator.LastName, ranked[2].SponsoredCount)
	}
}

func TestTopSupportersLimitIsPrefix(t *testing.T) {
	slate := []domain.Legislator{
		{Name: "Alice Alpha", LastName: "alpha"},
		{Name: "Bob Beta", LastName: "beta"},
		{Name: "Carol Gamma", LastName: "gamma"},
	}
	bills := []domain.Bill{
		sponsoredBy("S 1", "Alice Alpha", "Bob Beta", "Carol Gamma"),
		sponsoredBy("S 2", "Alice Alpha", "Bob Beta"),
	}

	full := TopSupporters(NewScorer(Overrides{}), slate, "healthcare", bills, 0)
	top2 := TopSupporters(NewScorer(Overrides{}), slate, "healthcare", bills, 2)

	if len(top2) != 2 {
		t.Fatalf("limited ranking has %d entries, want 2", len(top2))
	}
	for i := range top2 {
		if top2[i].Legislator.LastName != full[i].Legislator.LastName {
			t.Errorf("entry %d: limited = %s, full = %s; limit must be a prefix of the full ranking",
				i, top2[i].Legislator.LastName, full[i].Legislator.LastName)
		}
	}
}

func TestOpposedCountsNayVotes(t *testing.T) {
	slate := []domain.Legislator{
		{Name: "Alice Alpha", LastName: "alpha"},
		{Name: "Bob Beta", LastName: "beta"},
	}
	bills := []domain.Bill{
		{
			Identifier: "S 1",
			RecordID:   "r-1",
			Votes: []domain.VoteRecord{
				{Voter: "Alice Alpha", Position: "Nay"},
				{Voter: "Bob Beta", Position: "yea"},
			},
		},
		{
			Identifier: "S 2",
			RecordID:   "r-2",
			Votes: []domain.VoteRecord{
				{Voter: "Alice Alpha", Position: "no"},
				{Voter: "Someone Else", Position: "nay"},
			},
		},
	}

	opposed := Opposed(slate, bills)

	if len(opposed) != 1 {
		t.Fatalf("opposed has %d entries, want 1", len(opposed))
	}
	if opposed[0].Legislator.LastName != "alpha" || opposed[0].NayCount != 2 {
		t.Errorf("opposed[0] = %s(%d), want alpha(2)",
			opposed[0].Legislator.LastName, opposed[0].NayCount)
	}
}

func TestOpposedEmptyWithoutVoteData(t *testing.T) {
	slate := []domain.Legislator{{Name: "Alice Alpha", LastName: "alpha"}}
	bills := []domain.Bill{sponsoredBy("S 1", "Alice Alpha")}

	if opposed := Opposed(slate, bills); len(opposed) != 0 {
		t.Errorf("opposed = %v, want empty for bills without roll-call data", opposed)
	}
}

func TestIsNay(t *testing.T) {
	for _, pos := range []string{"nay", "Nay", "NO", "n", " nay "} {
		if !isNay(pos) {
			t.Errorf("isNay(%q) = false, want true", pos)
		}
	}
	for _, pos := range []string{"yea", "absent", "", "not voting"} {
		if isNay(pos) {
			t.Errorf("isNay(%q) = true, want false", pos)
		}
	}
}
