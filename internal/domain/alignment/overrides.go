package alignment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/civicsignal/repalign/internal/domain"
)

// Overrides holds the operator-curated bill override tables. Both maps key on
// legislator display name, then issue id: overrides are per (legislator, issue)
// pair, never global, so a bill excluded for one legislator's view stays
// visible for another's. Loaded once as configuration, never mutated at
// runtime.
type Overrides struct {
	// Associations injects curated bills into a legislator's view of an issue
	Associations map[string]map[string][]CuratedBill `yaml:"manual_bill_associations"`
	// Exclusions suppresses bills by identifier from a legislator's view
	Exclusions map[string]map[string][]string `yaml:"excluded_bills"`
}

// CuratedBill is the override-file shape of a manually associated bill. The
// sponsorship is synthesized from the legislator the entry is keyed under.
type CuratedBill struct {
	Identifier string `yaml:"identifier"`
	Title      string `yaml:"title"`
	RecordID   string `yaml:"record_id,omitempty"`
}

// LoadOverrides reads the override tables from a YAML file. An empty path
// yields empty tables.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("reading overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return Overrides{}, fmt.Errorf("parsing overrides %s: %w", path, err)
	}
	return ov, nil
}

// Apply rewrites a fetched bill list for one (legislator, issue) view:
// exclusions drop bills whose normalized identifier is suppressed, then
// curated additions append synthetic bills attributed to the legislator,
// skipping identifiers already present. The input slice is not modified.
func (o Overrides) Apply(legislatorName, issueID string, fetched []domain.Bill) []domain.Bill {
	excluded := make(map[string]bool)
	for _, id := range o.Exclusions[legislatorName][issueID] {
		excluded[domain.NormalizeBillID(id)] = true
	}

	out := make([]domain.Bill, 0, len(fetched))
	present := make(map[string]bool, len(fetched))
	for _, bill := range fetched {
		key := domain.NormalizeBillID(bill.Identifier)
		if excluded[key] {
			continue
		}
		present[key] = true
		out = append(out, bill)
	}

	for _, curated := range o.Associations[legislatorName][issueID] {
		key := domain.NormalizeBillID(curated.Identifier)
		if present[key] || excluded[key] {
			continue
		}
		present[key] = true
		recordID := curated.RecordID
		if recordID == "" {
			recordID = "curated-" + key
		}
		out = append(out, domain.Bill{
			Identifier: curated.Identifier,
			Title:      curated.Title,
			RecordID:   recordID,
			Sponsorships: []domain.Sponsorship{
				{Name: legislatorName, Primary: true},
			},
		})
	}

	return out
}
