// Package sheets appends registration rows to a Google Sheets spreadsheet.
// The target spreadsheet and range are fixed at construction; callers only
// ever append.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ErrNoCredentials is returned when neither a credentials file nor inline
// credentials JSON was configured.
var ErrNoCredentials = errors.New("sheets: no service account credentials configured")

// Config identifies the target sheet and how to authenticate.
type Config struct {
	SpreadsheetID   string
	Range           string // A1 range or sheet title, e.g. "Sheet1"
	CredentialsFile string
	CredentialsJSON string
}

// Appender writes rows to the bottom of a sheet.
type Appender struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	rng           string
}

// New authenticates with a service account and returns an Appender.
func New(ctx context.Context, cfg Config) (*Appender, error) {
	raw := []byte(cfg.CredentialsJSON)
	if len(raw) == 0 && cfg.CredentialsFile != "" {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("sheets: read credentials: %w", err)
		}
		raw = b
	}
	if len(raw) == 0 {
		return nil, ErrNoCredentials
	}
	creds, err := google.CredentialsFromJSON(ctx, raw, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse credentials: %w", err)
	}
	return NewWithOptions(ctx, cfg, option.WithTokenSource(creds.TokenSource))
}

// NewWithOptions builds an Appender with explicit client options.  Tests
// use it to point the client at a local server.
func NewWithOptions(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Appender, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("sheets: spreadsheet id is required")
	}
	rng := cfg.Range
	if rng == "" {
		rng = "Sheet1"
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}
	return &Appender{svc: svc, spreadsheetID: cfg.SpreadsheetID, rng: rng}, nil
}

// AppendRow adds fields as a new row after the last non-empty row.
func (a *Appender) AppendRow(ctx context.Context, fields []string) error {
	row := make([]interface{}, len(fields))
	for i, f := range fields {
		row[i] = f
	}
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, a.rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append: %w", err)
	}
	return nil
}
