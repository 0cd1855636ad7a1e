package domain

// Level classifies which body an official belongs to
type Level string

const (
	LevelCongress  Level = "congress"
	LevelState     Level = "state"
	LevelExecutive Level = "executive"
)

// JurisdictionFederal is the jurisdiction string used for congressional records
const JurisdictionFederal = "Federal"

// Location is a resolved street address
type Location struct {
	Lat   float64
	Lng   float64
	State string // two-letter postal code
}

// Legislator is the normalized elected-official entity
type Legislator struct {
	ID           string // provider-assigned, may be empty
	Name         string
	LastName     string // normalized, see NormalizeLastName
	Party        string
	Office       string
	Chamber      string // "upper" or "lower" where known
	Level        Level
	District     string
	Jurisdiction string // state name or JurisdictionFederal
	PhotoURL     string
	Emails       []string
	Phones       []string
	Website      string
}

// Completeness scores how much of a record is filled in. Used only to pick the
// better of two duplicate records during a slate merge, never displayed.
func (l Legislator) Completeness() int {
	score := 0
	if l.PhotoURL != "" {
		score += 5
	}
	if l.Party != "" && l.Party != "Unknown" {
		score++
	}
	if len(l.Emails) > 0 {
		score++
	}
	if len(l.Phones) > 0 {
		score++
	}
	if l.District != "" {
		score++
	}
	return score
}

// Sponsorship attributes a bill to the official who introduced or co-introduced it
type Sponsorship struct {
	Name    string
	Primary bool
}

// VoteRecord is one recorded roll-call position on a bill
type VoteRecord struct {
	Voter    string
	Position string // "yea", "nay", "absent", ...
}

// Bill is one legislative bill. Immutable once fetched.
type Bill struct {
	Identifier   string // chamber+number, e.g. "S 2202"
	Title        string
	RecordID     string // canonical provider record id
	Sponsorships []Sponsorship
	Votes        []VoteRecord
}

// Issue is a fixed catalog entry whose keywords drive bill queries
type Issue struct {
	ID          string
	Title       string
	Description string
	Keywords    []string
	Nonprofit   string
	LearnMore   string
}

// AlignmentResult is the ephemeral per-(legislator, bill set) score
type AlignmentResult struct {
	TotalBills     int
	SponsoredCount int
	MatchedBills   []Bill
}

// RankedSupporter is one entry of the supporters ranking
type RankedSupporter struct {
	Legislator     Legislator
	SponsoredCount int
}

// Opposition is one entry of the opposed ranking, built from recorded nay votes
type Opposition struct {
	Legislator Legislator
	NayCount   int
}
