package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/civicsignal/repalign/internal/mcp/tools"
	sheetsclient "github.com/civicsignal/repalign/pkg/sheets"
)

type sheetsClientAdapter struct {
	client *sheetsclient.Client
}

func (a *sheetsClientAdapter) ExportSupporters(ctx context.Context, target tools.SheetTarget, issueID string, rows []tools.SupporterRow) (int, error) {
	if a.client == nil {
		return 0, fmt.Errorf("sheets: client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if target.ClearTab {
		if err := a.client.ClearValues(ctx, target.SpreadsheetID, clearRange(target.Tab)); err != nil {
			return 0, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, []interface{}{"Rank", "Name", "Party", "Office", "District", "Sponsored bills", "Issue"})
	for _, row := range rows {
		values = append(values, []interface{}{
			strconv.Itoa(row.Rank),
			row.Name,
			row.Party,
			row.Office,
			row.District,
			strconv.Itoa(row.SponsoredCount),
			issueID,
		})
	}

	if err := a.client.AppendValues(ctx, target.SpreadsheetID, writeRange(target.Tab), values); err != nil {
		return 0, fmt.Errorf("sheets: failed to append rows: %w", err)
	}

	return len(rows), nil
}

func writeRange(tab string) string {
	if tab == "" {
		tab = "Sheet1"
	}
	return fmt.Sprintf("%s!A1", tab)
}

func clearRange(tab string) string {
	if tab == "" {
		tab = "Sheet1"
	}
	return fmt.Sprintf("%s!A1:Z", tab)
}
