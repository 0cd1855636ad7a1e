package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/logging"
)

// RepLookupParams defines the arguments for the rep_lookup tool
type RepLookupParams struct {
	Address string `json:"address" jsonschema:"Street address to resolve to elected officials"`
}

// LegislatorSummary is the response-friendly official view
type LegislatorSummary struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Party        string `json:"party,omitempty"`
	Office       string `json:"office,omitempty"`
	Level        string `json:"level"`
	District     string `json:"district,omitempty"`
	Jurisdiction string `json:"jurisdiction"`
	PhotoURL     string `json:"photo_url,omitempty"`
	Website      string `json:"website,omitempty"`
}

// RepLookupResult is the structured response of rep_lookup
type RepLookupResult struct {
	Jurisdiction string              `json:"jurisdiction" jsonschema:"Resolved state jurisdiction"`
	Officials    []LegislatorSummary `json:"officials" jsonschema:"Address-scoped official slate"`
}

type repLookupTool struct {
	engine Engine
	logger *logging.Logger
}

// WithRepLookup registers the rep_lookup tool
func WithRepLookup(engine Engine, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := repLookupTool{engine: engine, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "rep_lookup",
			Description: "Resolve a street address to its slate of elected officials",
		}, handler.handle)
	}
}

func (t repLookupTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *RepLookupParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.Address == "" {
		return nil, nil, fmt.Errorf("address is required")
	}

	result, err := t.engine.LookupReps(ctx, params.Address)
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("rep_lookup failed", "err", err)
		}
		return nil, nil, fmt.Errorf("lookup failed: %w", err)
	}

	out := RepLookupResult{
		Jurisdiction: result.Jurisdiction,
		Officials:    summarize(result.Slate),
	}

	msg := fmt.Sprintf("[rep_lookup] %d official(s) for jurisdiction %q", len(out.Officials), out.Jurisdiction)
	return textResult(msg), out, nil
}

func summarize(slate []domain.Legislator) []LegislatorSummary {
	out := make([]LegislatorSummary, 0, len(slate))
	for _, leg := range slate {
		out = append(out, LegislatorSummary{
			ID:           leg.ID,
			Name:         leg.Name,
			Party:        leg.Party,
			Office:       leg.Office,
			Level:        string(leg.Level),
			District:     leg.District,
			Jurisdiction: leg.Jurisdiction,
			PhotoURL:     leg.PhotoURL,
			Website:      leg.Website,
		})
	}
	return out
}
