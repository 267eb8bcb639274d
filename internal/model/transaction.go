package model

import "strings"

// Kind classifies a transaction as income or expense.
// The string values double as the display text.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// ParseKind converts free text to a Kind, case-insensitively.
// Anything that is not "income" or "expense" records as an expense;
// the lenient fallback is deliberate and covered by tests.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "income":
		return KindIncome
	case "expense":
		return KindExpense
	default:
		return KindExpense
	}
}

// Transaction is one recorded financial event. Records are immutable
// once created; the ledger never edits or deletes them.
type Transaction struct {
	ID          int // 1-based insertion rank, never reused
	Description string
	Amount      float64 // signed, unvalidated; Kind carries the income/expense tag
	Recurring   bool    // informational only, excluded from all aggregation
	Date        string  // free text, not parsed or validated
	Kind        Kind
	Category    string // grouping key for the category totals
}
