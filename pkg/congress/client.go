package congress

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
	defaultBaseURL  = "https://api.congress.gov/v3"
	defaultPageSize = 50
)

// NewClient instantiates a Congress.gov API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("congress: api key is required")
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

// Members returns the current members for a state, optionally narrowed to one
// House district. The district filter has no effect on senators.
func (c *Client) Members(ctx context.Context, stateCode, district string) ([]Member, error) {
	if stateCode == "" {
		return nil, fmt.Errorf("congress: state code is required")
	}

	endpoint := path.Join("member", strings.ToUpper(stateCode))
	if district != "" {
		endpoint = path.Join(endpoint, district)
	}

	values := url.Values{}
	values.Set("currentMember", "true")
	values.Set("limit", strconv.Itoa(c.pageSize))

	var payload memberListResponse
	if err := c.get(ctx, endpoint, values, &payload); err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(payload.Members))
	for _, rec := range payload.Members {
		members = append(members, mapMember(rec))
	}
	return members, nil
}

// SearchBills runs a keyword-scoped search over federal bills
func (c *Client) SearchBills(ctx context.Context, query string, limit int) ([]Bill, error) {
	if query == "" {
		return nil, fmt.Errorf("congress: query is required")
	}
	if limit <= 0 {
		limit = c.pageSize
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))
	values.Set("sort", "updateDate+desc")

	var payload billListResponse
	if err := c.get(ctx, "bill", values, &payload); err != nil {
		return nil, err
	}

	bills := make([]Bill, 0, len(payload.Bills))
	for _, rec := range payload.Bills {
		bills = append(bills, mapBill(rec))
	}
	return bills, nil
}

func (c *Client) get(ctx context.Context, endpoint string, values url.Values, out any) error {
	if c == nil {
		return fmt.Errorf("congress: client is nil")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("congress: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, endpoint)

	values.Set("format", "json")
	values.Set("api_key", c.apiKey)
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("congress: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("congress: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("congress: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("congress: decode response: %w", err)
	}
	return nil
}

func mapMember(rec memberRecord) Member {
	m := Member{
		ID:       rec.BioguideID,
		Name:     rec.Name,
		Party:    rec.PartyName,
		State:    rec.State,
		ImageURL: rec.Depiction.ImageURL,
		Website:  rec.OfficialWebsiteURL,
	}

	if rec.District > 0 {
		m.District = strconv.Itoa(rec.District)
	}

	if n := len(rec.Terms.Item); n > 0 {
		m.Chamber = rec.Terms.Item[n-1].Chamber
	}

	return m
}

func mapBill(rec billSummary) Bill {
	bill := Bill{
		RecordID:   rec.URL,
		Identifier: strings.TrimSpace(rec.Type + " " + rec.Number),
		Title:      rec.Title,
	}
	if bill.RecordID == "" {
		bill.RecordID = uuid.NewString()
	}

	for _, sp := range rec.Sponsors {
		bill.Sponsors = append(bill.Sponsors, BillSponsor{Name: sp.FullName, Primary: sp.IsPrimary})
	}

	return bill
}
