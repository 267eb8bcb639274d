package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  Groceries  \n"), &out)

	got, err := p.Line("Enter description: ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got)
	assert.Equal(t, "Enter description: ", out.String())
}

func TestLine_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("Rent"), &out)

	got, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "Rent", got)
}

func TestLine_EOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)

	_, err := p.Line("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAmount_ValidInput(t *testing.T) {
	p := New(strings.NewReader("123.45\n"), io.Discard)

	got, err := p.Amount("Enter amount: ")
	require.NoError(t, err)
	assert.Equal(t, 123.45, got)
}

func TestAmount_RepromptsOnParseFailure(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n\n12.50\n"), &out)

	got, err := p.Amount("Enter amount: ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid amount. Please enter a number."))
	assert.Equal(t, 3, strings.Count(out.String(), "Enter amount: "))
}

func TestAmount_EOFWhileRetrying(t *testing.T) {
	p := New(strings.NewReader("abc\n"), io.Discard)

	_, err := p.Amount("Enter amount: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("123.45")
	require.NoError(t, err)
	assert.Equal(t, 123.45, got)

	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes", true},
		{"y", true},
		{"YES", true},
		{"Y", true},
		{"no", false},
		{"n", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		p := New(strings.NewReader(tt.input+"\n"), io.Discard)
		got, err := p.YesNo("Recurring? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
