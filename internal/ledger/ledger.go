// Package ledger holds the in-memory transaction ledger and its
// aggregate queries. The ledger is append-only and exclusively owned
// by the interactive session; nothing here touches disk.
package ledger

import "github.com/tally-dev/tally/internal/model"

// Ledger owns the recorded transactions and the incrementally
// maintained per-category totals. Create one with New; the zero value
// is not usable.
type Ledger struct {
	transactions   []model.Transaction
	categoryTotals map[string]float64
	nextID         int
}

// New returns an empty Ledger. IDs start at 1.
func New() *Ledger {
	return &Ledger{
		categoryTotals: make(map[string]float64),
		nextID:         1,
	}
}

// AddParams holds the fields for a new transaction. Amounts are taken
// as-is: no sign, range, or finiteness checks. By convention amounts
// are positive magnitudes tagged by Kind; the ledger neither enforces
// nor depends on that convention (see NetBalance).
type AddParams struct {
	Description string
	Amount      float64
	Recurring   bool
	Date        string
	Kind        model.Kind
	Category    string
}

// Add appends a new transaction and updates the category running
// total. It cannot fail. Returns the stored record, ID assigned.
func (l *Ledger) Add(params AddParams) model.Transaction {
	txn := model.Transaction{
		ID:          l.nextID,
		Description: params.Description,
		Amount:      params.Amount,
		Recurring:   params.Recurring,
		Date:        params.Date,
		Kind:        params.Kind,
		Category:    params.Category,
	}

	l.transactions = append(l.transactions, txn)
	l.categoryTotals[params.Category] += params.Amount
	l.nextID++

	return txn
}

// TotalIncome returns the sum of amounts over all income transactions.
// Zero for an empty ledger.
func (l *Ledger) TotalIncome() float64 {
	return l.sumByKind(model.KindIncome)
}

// TotalExpense returns the sum of amounts over all expense transactions.
// Zero for an empty ledger.
func (l *Ledger) TotalExpense() float64 {
	return l.sumByKind(model.KindExpense)
}

func (l *Ledger) sumByKind(kind model.Kind) float64 {
	var sum float64
	for _, txn := range l.transactions {
		if txn.Kind == kind {
			sum += txn.Amount
		}
	}
	return sum
}

// NetBalance returns TotalIncome minus TotalExpense. This is a true
// net only under the positive-magnitude convention: an expense stored
// as a negative amount ends up added rather than subtracted.
func (l *Ledger) NetBalance() float64 {
	return l.TotalIncome() - l.TotalExpense()
}

// AverageTransaction returns the arithmetic mean of amounts across all
// transactions regardless of kind. An empty ledger yields exactly 0.
func (l *Ledger) AverageTransaction() float64 {
	if len(l.transactions) == 0 {
		return 0
	}
	var sum float64
	for _, txn := range l.transactions {
		sum += txn.Amount
	}
	return sum / float64(len(l.transactions))
}

// CategoryBreakdown returns a copy of the per-category totals. Each
// total is the signed sum of all amounts recorded under that category,
// both kinds included, expenses not negated: net flow per category.
// Map iteration order is unspecified; display layers sort.
func (l *Ledger) CategoryBreakdown() map[string]float64 {
	totals := make(map[string]float64, len(l.categoryTotals))
	for category, total := range l.categoryTotals {
		totals[category] = total
	}
	return totals
}

// Transactions returns all transactions in insertion order.
// Read-only view; callers must not modify it.
func (l *Ledger) Transactions() []model.Transaction {
	return l.transactions
}

// Count returns the number of recorded transactions.
func (l *Ledger) Count() int {
	return len(l.transactions)
}

// HasCategory reports whether at least one transaction has been
// recorded under the given category.
func (l *Ledger) HasCategory(name string) bool {
	_, ok := l.categoryTotals[name]
	return ok
}
