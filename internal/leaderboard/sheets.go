package leaderboard

import (
	"context"
	"fmt"

	"github.com/parasnikum/DevSync/pkg/logger"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsEmitter writes the report into a Google Sheet. The configured range
// is overwritten wholesale on every run; USER_ENTERED input mode makes the
// HYPERLINK formulas evaluate.
type SheetsEmitter struct {
	service *sheets.Service
	sheetID string
	rangeA1 string
}

// NewSheetsEmitter builds an emitter authenticated with a service account
// credentials file
func NewSheetsEmitter(ctx context.Context, credentialsFile, sheetID, rangeA1 string) (*SheetsEmitter, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsEmitter{
		service: service,
		sheetID: sheetID,
		rangeA1: rangeA1,
	}, nil
}

// Emit replaces the sheet range with the report table
func (e *SheetsEmitter) Emit(ctx context.Context, report *Report) error {
	values := make([][]interface{}, 0, len(report.Rows)+1)

	header := make([]interface{}, len(report.Headers))
	for i, h := range report.Headers {
		header[i] = h
	}
	values = append(values, header)
	values = append(values, report.Rows...)

	_, err := e.service.Spreadsheets.Values.
		Update(e.sheetID, e.rangeA1, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update sheet: %w", err)
	}

	logger.Infof("Google Sheet updated: rows = %d", len(report.Rows))
	return nil
}
