package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"income", KindIncome},
		{"Income", KindIncome},
		{"INCOME", KindIncome},
		{"expense", KindExpense},
		{"EXPENSE", KindExpense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseKind(tt.input), "input %q", tt.input)
	}
}

func TestParseKind_UnrecognizedFallsBackToExpense(t *testing.T) {
	// Unknown text is not an error; it records as an expense.
	for _, input := range []string{"", "transfer", "inc", "expenses", " income"} {
		assert.Equal(t, KindExpense, ParseKind(input), "input %q", input)
	}
}
