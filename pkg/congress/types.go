package congress

import "net/http"

// Config defines Congress.gov API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the Congress.gov v3 API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

type memberListResponse struct {
	Members []memberRecord `json:"members"`
}

type memberRecord struct {
	BioguideID string `json:"bioguideId"`
	Name       string `json:"name"` // "Last, First" shape
	PartyName  string `json:"partyName"`
	State      string `json:"state"`
	District   int    `json:"district"`
	Depiction  struct {
		ImageURL string `json:"imageUrl"`
	} `json:"depiction"`
	OfficialWebsiteURL string `json:"officialWebsiteUrl"`
	Terms              struct {
		Item []struct {
			Chamber string `json:"chamber"`
		} `json:"item"`
	} `json:"terms"`
}

type billListResponse struct {
	Bills []billSummary `json:"bills"`
}

type billSummary struct {
	Type     string `json:"type"`
	Number   string `json:"number"`
	Title    string `json:"title"`
	Congress int    `json:"congress"`
	URL      string `json:"url"`
	Sponsors []struct {
		FullName   string `json:"fullName"`
		IsPrimary  bool   `json:"isPrimary"`
		BioguideID string `json:"bioguideId"`
	} `json:"sponsors"`
}

// Member is a normalized congressional member record
type Member struct {
	ID       string
	Name     string // as served: "Last, First"
	Party    string
	State    string
	District string // empty for senators
	Chamber  string // "Senate" or "House of Representatives"
	ImageURL string
	Website  string
}

// BillSponsor is one sponsorship attribution on a federal bill
type BillSponsor struct {
	Name    string
	Primary bool
}

// Bill is a normalized federal bill record
type Bill struct {
	RecordID   string
	Identifier string // e.g. "HR 3076"
	Title      string
	Sponsors   []BillSponsor
}
