package legislator

import (
	"sort"
	"strings"

	"github.com/civicsignal/repalign/internal/domain"
)

// MergeSlate folds a jurisdiction-wide roster into an address-scoped slate
// without duplicating officials. A roster record whose provider id already
// appears in the slate is a true duplicate and is dropped. A record whose
// normalized last name matches a slate entry is treated as the same person
// under a different provider shape: the slate entry is replaced in place when
// the incoming record scores strictly higher on completeness, and the incoming
// record is dropped either way. Remaining records are genuinely new officials,
// appended in district order.
//
// Known limitation: two different officials sharing a surname in the same
// jurisdiction will merge under the name heuristic; no district cross-check is
// applied.
func MergeSlate(slate, roster []domain.Legislator) []domain.Legislator {
	byID := make(map[string]int, len(slate))
	byLastName := make(map[string]int, len(slate))
	for i, leg := range slate {
		if leg.ID != "" {
			byID[leg.ID] = i
		}
		if leg.LastName != "" {
			if _, ok := byLastName[leg.LastName]; !ok {
				byLastName[leg.LastName] = i
			}
		}
	}

	var fresh []domain.Legislator
	for _, inc := range roster {
		if inc.ID != "" {
			if _, ok := byID[inc.ID]; ok {
				continue
			}
		}

		if inc.LastName != "" {
			if i, ok := byLastName[inc.LastName]; ok {
				if inc.Completeness() > slate[i].Completeness() {
					slate[i] = inc
					if inc.ID != "" {
						byID[inc.ID] = i
					}
				}
				continue
			}
		}

		fresh = append(fresh, inc)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return districtLess(fresh[i].District, fresh[j].District)
	})

	return append(slate, fresh...)
}

// districtLess orders district labels with numeric awareness, so "2nd" sorts
// before "10th" and plain numbers compare as numbers.
func districtLess(a, b string) bool {
	na, aNum := leadingNumber(a)
	nb, bNum := leadingNumber(b)

	switch {
	case aNum && bNum:
		if na != nb {
			return na < nb
		}
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	default:
		return strings.ToLower(a) < strings.ToLower(b)
	}
}

func leadingNumber(s string) (int, bool) {
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	return n, seen
}
