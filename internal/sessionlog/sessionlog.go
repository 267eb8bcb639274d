// Package sessionlog keeps an append-only audit trail of ledger
// activity. It is write-only from the application's point of view:
// entries are never read back into ledger state.
package sessionlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the session log.
type Entry struct {
	Timestamp     time.Time
	Action        string // "add", "import", "quit"
	Details       string
	TransactionID int // 0 when the action has no single transaction
}

// Header is the CSV header for session-log.csv.
const Header = "timestamp,action,details,transaction_id"

const (
	numFields  = 4
	logDir     = "logs"
	logFile    = "logs/session-log.csv"
	colTime    = 0
	colAction  = 1
	colDetails = 2
	colTxnID   = 3
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	if e.TransactionID != 0 {
		row[colTxnID] = strconv.Itoa(e.TransactionID)
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	txnID := 0
	if record[colTxnID] != "" {
		txnID, err = strconv.Atoi(record[colTxnID])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing transaction_id %q: %w", record[colTxnID], err)
		}
	}

	return Entry{
		Timestamp:     ts,
		Action:        record[colAction],
		Details:       record[colDetails],
		TransactionID: txnID,
	}, nil
}

// Append writes entries to <baseDir>/logs/session-log.csv, creating
// the file and header if needed.
func Append(baseDir string, entries []Entry) error {
	dir := filepath.Join(baseDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(baseDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <baseDir>/logs/session-log.csv.
// Returns an empty slice if the file does not exist.
func Read(baseDir string) ([]Entry, error) {
	path := filepath.Join(baseDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening session log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading session log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
