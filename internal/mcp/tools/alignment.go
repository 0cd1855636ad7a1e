package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/session"
	"github.com/civicsignal/repalign/pkg/logging"
)

// RepAlignmentParams defines the arguments for the rep_alignment tool
type RepAlignmentParams struct {
	Legislator string `json:"legislator" jsonschema:"Display name of an official in the current slate"`
	IssueID    string `json:"issue_id" jsonschema:"Catalog issue identifier"`
}

// RepAlignmentResult is the structured response of rep_alignment
type RepAlignmentResult struct {
	Legislator     string        `json:"legislator"`
	IssueID        string        `json:"issue_id"`
	TotalBills     int           `json:"total_bills"`
	SponsoredCount int           `json:"sponsored_count"`
	MatchedBills   []BillSummary `json:"matched_bills,omitempty"`
}

type repAlignmentTool struct {
	engine Engine
	logger *logging.Logger
}

// WithRepAlignment registers the rep_alignment tool
func WithRepAlignment(engine Engine, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := repAlignmentTool{engine: engine, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "rep_alignment",
			Description: "Score one official's sponsorship alignment with a civic issue",
		}, handler.handle)
	}
}

func (t repAlignmentTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *RepAlignmentParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.Legislator == "" || params.IssueID == "" {
		return nil, nil, fmt.Errorf("legislator and issue_id are required")
	}

	result, err := t.engine.LoadRepAlignment(ctx, params.Legislator, params.IssueID)
	if err != nil {
		if t.logger != nil && !errors.Is(err, session.ErrUnknownLegislator) {
			t.logger.Warn("rep_alignment failed",
				"legislator", params.Legislator, "issue", params.IssueID, "err", err)
		}
		return nil, nil, err
	}

	out := RepAlignmentResult{
		Legislator:     params.Legislator,
		IssueID:        params.IssueID,
		TotalBills:     result.TotalBills,
		SponsoredCount: result.SponsoredCount,
	}
	for _, bill := range result.MatchedBills {
		out.MatchedBills = append(out.MatchedBills, BillSummary{
			Identifier: bill.Identifier,
			Title:      bill.Title,
			RecordID:   bill.RecordID,
		})
	}

	msg := fmt.Sprintf("[rep_alignment] %s sponsored %d of %d related bill(s)",
		params.Legislator, out.SponsoredCount, out.TotalBills)
	return textResult(msg), out, nil
}
