// Package report renders ledger queries for display.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
)

// WriteSummary prints the financial summary: totals, net balance, and
// average transaction, each to two decimal places with the currency
// symbol prefixed.
func WriteSummary(w io.Writer, l *ledger.Ledger, currency string) {
	fmt.Fprintln(w, "\n=== Financial Summary ===")
	fmt.Fprintf(w, "Total Income: %s\n", FormatAmount(currency, l.TotalIncome()))
	fmt.Fprintf(w, "Total Expense: %s\n", FormatAmount(currency, l.TotalExpense()))
	fmt.Fprintf(w, "Net Balance: %s\n", FormatAmount(currency, l.NetBalance()))
	fmt.Fprintf(w, "Average Transaction: %s\n", FormatAmount(currency, l.AverageTransaction()))
	fmt.Fprintln(w, "=========================")
}

// WriteCategoryReport prints every (category, total) pair. Categories
// are sorted lexicographically: the totals map has no stable iteration
// order of its own, and the report output must be deterministic.
func WriteCategoryReport(w io.Writer, l *ledger.Ledger, currency string) {
	breakdown := l.CategoryBreakdown()

	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Fprintln(w, "\n=== Category Breakdown ===")
	for _, category := range categories {
		fmt.Fprintf(w, "%s %s\n", category, FormatAmount(currency, breakdown[category]))
	}
	fmt.Fprintln(w, "==========================")
}

// WriteTransactions prints every transaction in insertion order.
func WriteTransactions(w io.Writer, l *ledger.Ledger, currency string) {
	fmt.Fprintln(w, "\n=== All Transactions ===")
	for _, txn := range l.Transactions() {
		fmt.Fprintf(w, "ID: %d | %s | %s | %s | %s | %s | Recurring: %t\n",
			txn.ID,
			txn.Description,
			FormatAmount(currency, txn.Amount),
			txn.Kind,
			txn.Category,
			txn.Date,
			txn.Recurring,
		)
	}
	fmt.Fprintln(w, "========================")
}

// FormatAmount renders an amount to two decimal places with the
// currency symbol prefixed. The ledger accepts NaN and infinities,
// which decimal cannot represent, so those fall back to %.2f.
func FormatAmount(currency string, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%s%.2f", currency, amount)
	}
	return currency + decimal.NewFromFloat(amount).StringFixed(2)
}
