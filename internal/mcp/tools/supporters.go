package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/session"
	"github.com/civicsignal/repalign/pkg/logging"
)

// TopSupportersParams defines the arguments for the top_supporters tool
type TopSupportersParams struct {
	IssueID string `json:"issue_id" jsonschema:"Catalog issue identifier"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Optional fixed-size prefix of the ranking; 0 returns all"`
}

// TopSupportersResult is the structured response of top_supporters
type TopSupportersResult struct {
	IssueID    string             `json:"issue_id"`
	Supporters []SupporterSummary `json:"supporters"`
}

type topSupportersTool struct {
	engine Engine
	logger *logging.Logger
}

// WithTopSupporters registers the top_supporters tool
func WithTopSupporters(engine Engine, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := topSupportersTool{engine: engine, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "top_supporters",
			Description: "Rank the current slate's supporters of a civic issue by bill sponsorship",
		}, handler.handle)
	}
}

func (t topSupportersTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *TopSupportersParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.IssueID == "" {
		return nil, nil, fmt.Errorf("issue_id is required")
	}

	ranked, err := t.engine.LoadTopSupporters(ctx, params.IssueID, params.Limit)
	if errors.Is(err, session.ErrStale) {
		return textResult("[top_supporters] superseded by a newer request, result discarded"), nil, nil
	}
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("top_supporters failed", "issue", params.IssueID, "err", err)
		}
		return nil, nil, err
	}

	out := TopSupportersResult{IssueID: params.IssueID}
	for _, sup := range ranked {
		out.Supporters = append(out.Supporters, SupporterSummary{
			Name:           sup.Legislator.Name,
			Party:          sup.Legislator.Party,
			Office:         sup.Legislator.Office,
			District:       sup.Legislator.District,
			SponsoredCount: sup.SponsoredCount,
		})
	}

	msg := fmt.Sprintf("[top_supporters] %d supporter(s) for issue %q", len(out.Supporters), params.IssueID)
	return textResult(msg), out, nil
}
