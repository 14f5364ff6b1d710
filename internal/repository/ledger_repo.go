package repository

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

type LedgerRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetRange    string
}

func NewLedgerRepository(svc *sheets.Service, spreadsheetID, sheetRange string) *LedgerRepository {
	return &LedgerRepository{svc: svc, spreadsheetID: spreadsheetID, sheetRange: sheetRange}
}

// IsEmpty reports whether the ledger range has no rows yet, which is when
// the header row gets written.
func (r *LedgerRepository) IsEmpty(ctx context.Context) (bool, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.sheetRange).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("error reading ledger range %s: %w", r.sheetRange, err)
	}
	return len(resp.Values) == 0, nil
}

func (r *LedgerRepository) AppendRow(ctx context.Context, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, r.sheetRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("error appending ledger row: %w", err)
	}
	return nil
}
