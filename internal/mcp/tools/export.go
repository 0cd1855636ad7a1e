package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/session"
	"github.com/civicsignal/repalign/pkg/logging"
)

// SheetTarget identifies the destination spreadsheet
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write into"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
}

// SupporterRow is one exported ranking row
type SupporterRow struct {
	Rank           int
	Name           string
	Party          string
	Office         string
	District       string
	SponsoredCount int
}

// SheetsClient writes supporter rankings to a spreadsheet
type SheetsClient interface {
	ExportSupporters(ctx context.Context, target SheetTarget, issueTitle string, rows []SupporterRow) (int, error)
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	IssueID string      `json:"issue_id" jsonschema:"Issue whose supporter ranking to export"`
	Limit   int         `json:"limit,omitempty" jsonschema:"Optional ranking prefix; 0 exports all supporters"`
	Sheet   SheetTarget `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

type sheetsExportTool struct {
	engine Engine
	client SheetsClient
	logger *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(engine Engine, client SheetsClient, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{engine: engine, client: client, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export an issue's supporter ranking to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.IssueID == "" || params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("issue_id and sheet.spreadsheet_id are required")
	}
	if t.client == nil {
		return nil, nil, fmt.Errorf("sheets client not configured")
	}

	ranked, err := t.engine.LoadTopSupporters(ctx, params.IssueID, params.Limit)
	if errors.Is(err, session.ErrStale) {
		return textResult("[sheets_export] superseded by a newer request, nothing exported"), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	rows := make([]SupporterRow, 0, len(ranked))
	for i, sup := range ranked {
		rows = append(rows, SupporterRow{
			Rank:           i + 1,
			Name:           sup.Legislator.Name,
			Party:          sup.Legislator.Party,
			Office:         sup.Legislator.Office,
			District:       sup.Legislator.District,
			SponsoredCount: sup.SponsoredCount,
		})
	}

	written, err := t.client.ExportSupporters(ctx, params.Sheet, params.IssueID, rows)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("sheets export failed", "issue", params.IssueID, "err", err)
		}
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}

	out := SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
		WrittenRows:   written,
		CompletedAt:   time.Now().UTC(),
		Message:       fmt.Sprintf("exported %d supporter row(s)", written),
	}

	msg := fmt.Sprintf("[sheets_export] wrote %d row(s) to %q", written, params.Sheet.SpreadsheetID)
	return textResult(msg), out, nil
}
