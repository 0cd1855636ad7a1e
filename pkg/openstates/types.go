package openstates

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Config defines OpenStates API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the OpenStates v3 API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// flexString tolerates fields the API serves as either string or number
// (district shows up both ways depending on the jurisdiction).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("district: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

type peopleResponse struct {
	Results []personRecord `json:"results"`
}

type personRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Image       string `json:"image"`
	Email       string `json:"email"`
	CurrentRole struct {
		Title             string     `json:"title"`
		OrgClassification string     `json:"org_classification"`
		District          flexString `json:"district"`
		DivisionID        string     `json:"division_id"`
	} `json:"current_role"`
	Jurisdiction struct {
		Name string `json:"name"`
	} `json:"jurisdiction"`
	Offices []struct {
		Voice string `json:"voice"`
	} `json:"offices"`
	Links []struct {
		URL  string `json:"url"`
		Note string `json:"note"`
	} `json:"links"`
}

type billsResponse struct {
	Results []billRecord `json:"results"`
}

type billRecord struct {
	ID           string `json:"id"`
	Identifier   string `json:"identifier"`
	Title        string `json:"title"`
	Sponsorships []struct {
		Name    string `json:"name"`
		Primary bool   `json:"primary"`
	} `json:"sponsorships"`
	Votes []struct {
		Votes []struct {
			VoterName string `json:"voter_name"`
			Option    string `json:"option"`
		} `json:"votes"`
	} `json:"votes"`
}

// Person is a normalized OpenStates people record
type Person struct {
	ID           string
	Name         string
	Party        string
	Title        string
	Chamber      string // org classification: "upper", "lower", "executive"
	District     string
	Jurisdiction string
	Image        string
	Email        string
	Phones       []string
	Website      string
}

// Sponsor is one sponsorship attribution on a bill
type Sponsor struct {
	Name    string
	Primary bool
}

// Vote is one recorded roll-call position on a bill
type Vote struct {
	Voter  string
	Option string
}

// Bill is a normalized OpenStates bill record
type Bill struct {
	RecordID   string
	Identifier string
	Title      string
	Sponsors   []Sponsor
	Votes      []Vote
}
