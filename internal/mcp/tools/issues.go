package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/session"
	"github.com/civicsignal/repalign/pkg/logging"
)

// IssueSummary is the response-friendly catalog entry view
type IssueSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords"`
	Nonprofit   string   `json:"nonprofit,omitempty"`
	LearnMore   string   `json:"learn_more,omitempty"`
}

// ListIssuesResult is the structured response of list_issues
type ListIssuesResult struct {
	Issues []IssueSummary `json:"issues"`
}

// WithListIssues registers the list_issues tool
func WithListIssues(engine Engine) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_issues",
			Description: "List the civic issue catalog the engine can score against",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *struct{}) (*sdkmcp.CallToolResult, any, error) {
			_ = ctx
			_ = req
			_ = params

			issues := engine.Issues()
			out := ListIssuesResult{Issues: make([]IssueSummary, 0, len(issues))}
			for _, iss := range issues {
				out.Issues = append(out.Issues, IssueSummary{
					ID:          iss.ID,
					Title:       iss.Title,
					Description: iss.Description,
					Keywords:    iss.Keywords,
					Nonprofit:   iss.Nonprofit,
					LearnMore:   iss.LearnMore,
				})
			}

			msg := fmt.Sprintf("[list_issues] %d issue(s) in catalog", len(out.Issues))
			return textResult(msg), out, nil
		})
	}
}

// IssueDetailParams defines the arguments for the issue_detail tool
type IssueDetailParams struct {
	IssueID string `json:"issue_id" jsonschema:"Catalog issue identifier"`
}

// BillSummary is the response-friendly bill view
type BillSummary struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
}

// SupporterSummary is one ranked supporter entry
type SupporterSummary struct {
	Name           string `json:"name"`
	Party          string `json:"party,omitempty"`
	Office         string `json:"office,omitempty"`
	District       string `json:"district,omitempty"`
	SponsoredCount int    `json:"sponsored_count"`
}

// OpposedSummary is one opposed entry built from recorded nay votes
type OpposedSummary struct {
	Name     string `json:"name"`
	NayCount int    `json:"nay_count"`
}

// IssueDetailResult is the structured response of issue_detail
type IssueDetailResult struct {
	Issue      IssueSummary       `json:"issue"`
	Bills      []BillSummary      `json:"bills"`
	Supporters []SupporterSummary `json:"supporters"`
	Opposed    []OpposedSummary   `json:"opposed,omitempty"`
}

type issueDetailTool struct {
	engine Engine
	logger *logging.Logger
}

// WithIssueDetail registers the issue_detail tool
func WithIssueDetail(engine Engine, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := issueDetailTool{engine: engine, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "issue_detail",
			Description: "Fetch an issue's related bills and the slate's stance on it",
		}, handler.handle)
	}
}

func (t issueDetailTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *IssueDetailParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.IssueID == "" {
		return nil, nil, fmt.Errorf("issue_id is required")
	}

	detail, err := t.engine.ShowIssueDetail(ctx, params.IssueID)
	if errors.Is(err, session.ErrStale) {
		// superseded by a newer request: report, don't fail
		return textResult("[issue_detail] superseded by a newer request, result discarded"), nil, nil
	}
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("issue_detail failed", "issue", params.IssueID, "err", err)
		}
		return nil, nil, err
	}

	out := IssueDetailResult{
		Issue: IssueSummary{
			ID:          detail.Issue.ID,
			Title:       detail.Issue.Title,
			Description: detail.Issue.Description,
			Keywords:    detail.Issue.Keywords,
			Nonprofit:   detail.Issue.Nonprofit,
			LearnMore:   detail.Issue.LearnMore,
		},
	}
	for _, bill := range detail.Bills {
		out.Bills = append(out.Bills, BillSummary{
			Identifier: bill.Identifier,
			Title:      bill.Title,
			RecordID:   bill.RecordID,
		})
	}
	for _, sup := range detail.Supporters {
		out.Supporters = append(out.Supporters, SupporterSummary{
			Name:           sup.Legislator.Name,
			Party:          sup.Legislator.Party,
			Office:         sup.Legislator.Office,
			District:       sup.Legislator.District,
			SponsoredCount: sup.SponsoredCount,
		})
	}
	for _, opp := range detail.Opposed {
		out.Opposed = append(out.Opposed, OpposedSummary{
			Name:     opp.Legislator.Name,
			NayCount: opp.NayCount,
		})
	}

	msg := fmt.Sprintf("[issue_detail] %q: %d bill(s), %d supporter(s)",
		detail.Issue.Title, len(out.Bills), len(out.Supporters))
	return textResult(msg), out, nil
}
