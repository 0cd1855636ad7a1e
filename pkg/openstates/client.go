package openstates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultBaseURL  = "https://v3.openstates.org"
	defaultPageSize = 50
)

// NewClient instantiates an OpenStates API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openstates: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		pageSize:   pageSize,
	}, nil
}

// PeopleByLocation returns the officials whose districts contain a coordinate
func (c *Client) PeopleByLocation(ctx context.Context, lat, lng float64) ([]Person, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	values.Set("include", "offices")

	var payload peopleResponse
	if err := c.get(ctx, "people.geo", values, &payload); err != nil {
		return nil, err
	}
	return mapPeople(payload.Results), nil
}

// People returns the full current roster for a jurisdiction
func (c *Client) People(ctx context.Context, jurisdiction string) ([]Person, error) {
	if jurisdiction == "" {
		return nil, fmt.Errorf("openstates: jurisdiction is required")
	}

	values := url.Values{}
	values.Set("jurisdiction", jurisdiction)
	values.Set("include", "offices")
	values.Set("per_page", strconv.Itoa(c.pageSize))

	var payload peopleResponse
	if err := c.get(ctx, "people", values, &payload); err != nil {
		return nil, err
	}
	return mapPeople(payload.Results), nil
}

// SearchBills runs a keyword-scoped bill search within a jurisdiction
func (c *Client) SearchBills(ctx context.Context, jurisdiction, query string, limit int) ([]Bill, error) {
	if jurisdiction == "" {
		return nil, fmt.Errorf("openstates: jurisdiction is required")
	}
	if query == "" {
		return nil, fmt.Errorf("openstates: query is required")
	}
	if limit <= 0 {
		limit = c.pageSize
	}

	values := url.Values{}
	values.Set("jurisdiction", jurisdiction)
	values.Set("q", query)
	values.Set("include", "sponsorships")
	values.Set("per_page", strconv.Itoa(limit))

	var payload billsResponse
	if err := c.get(ctx, "bills", values, &payload); err != nil {
		return nil, err
	}

	bills := make([]Bill, 0, len(payload.Results))
	for _, rec := range payload.Results {
		bills = append(bills, mapBill(rec))
	}
	return bills, nil
}

func (c *Client) get(ctx context.Context, endpoint string, values url.Values, out any) error {
	if c == nil {
		return fmt.Errorf("openstates: client is nil")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("openstates: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, endpoint)
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("openstates: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openstates: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("openstates: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openstates: decode response: %w", err)
	}
	return nil
}

func mapPeople(records []personRecord) []Person {
	people := make([]Person, 0, len(records))
	for _, rec := range records {
		people = append(people, mapPerson(rec))
	}
	return people
}

func mapPerson(rec personRecord) Person {
	p := Person{
		ID:           rec.ID,
		Name:         rec.Name,
		Party:        rec.Party,
		Title:        rec.CurrentRole.Title,
		Chamber:      rec.CurrentRole.OrgClassification,
		District:     string(rec.CurrentRole.District),
		Jurisdiction: rec.Jurisdiction.Name,
		Image:        rec.Image,
		Email:        rec.Email,
	}

	for _, office := range rec.Offices {
		if office.Voice != "" {
			p.Phones = append(p.Phones, office.Voice)
		}
	}

	for _, link := range rec.Links {
		if link.URL != "" {
			p.Website = link.URL
			break
		}
	}

	return p
}

func mapBill(rec billRecord) Bill {
	bill := Bill{
		RecordID:   rec.ID,
		Identifier: rec.Identifier,
		Title:      rec.Title,
	}
	if bill.RecordID == "" {
		bill.RecordID = uuid.NewString()
	}

	for _, sp := range rec.Sponsorships {
		bill.Sponsors = append(bill.Sponsors, Sponsor{Name: sp.Name, Primary: sp.Primary})
	}

	for _, event := range rec.Votes {
		for _, v := range event.Votes {
			bill.Votes = append(bill.Votes, Vote{Voter: v.VoterName, Option: v.Option})
		}
	}

	return bill
}
