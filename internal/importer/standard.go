package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/prompt"
)

// StandardParser parses the native transaction CSV layout:
// description,amount,recurring,date,kind,category with a header row.
type StandardParser struct{}

const (
	stdNumFields    = 6
	stdColDesc      = 0
	stdColAmount    = 1
	stdColRecurring = 2
	stdColDate      = 3
	stdColKind      = 4
	stdColCategory  = 5
)

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a transaction CSV and returns ledger add parameters.
func (p *StandardParser) Parse(r io.Reader) ([]ledger.AddParams, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stdNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transaction CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []ledger.AddParams
	for i, rec := range records[1:] {
		row, err := parseStandardRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseStandardRow(rec []string) (ledger.AddParams, error) {
	// Batch input has no re-prompt, so a bad amount fails the row.
	amount, err := prompt.ParseAmount(rec[stdColAmount])
	if err != nil {
		return ledger.AddParams{}, fmt.Errorf("parsing amount %q: %w", rec[stdColAmount], err)
	}

	return ledger.AddParams{
		Description: rec[stdColDesc],
		Amount:      amount,
		Recurring:   prompt.IsYes(rec[stdColRecurring]),
		Date:        rec[stdColDate],
		Kind:        model.ParseKind(rec[stdColKind]),
		Category:    rec[stdColCategory],
	}, nil
}
