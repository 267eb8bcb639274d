// Package prompt implements the line-based prompt/parse glue between
// the interactive menu and the ledger.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers line by line from r, writing prompt labels
// to w. Both ends are injectable so tests can script a session.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Prompter over the given reader and writer.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints label and reads one line, trimmed of surrounding
// whitespace. io.EOF means the input stream ended mid-session.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Amount prints label and reads lines until one parses as a float.
// Parse failures re-prompt; an invalid amount never escapes this
// method, so the ledger only ever sees well-typed numbers.
func (p *Prompter) Amount(label string) (float64, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		amount, err := ParseAmount(input)
		if err != nil {
			fmt.Fprintln(p.w, "Invalid amount. Please enter a number.")
			continue
		}
		return amount, nil
	}
}

// YesNo prints label and reads one answer, interpreted with IsYes.
func (p *Prompter) YesNo(label string) (bool, error) {
	input, err := p.Line(label)
	if err != nil {
		return false, err
	}
	return IsYes(input), nil
}

// ParseAmount parses free text as a float64.
func ParseAmount(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// IsYes reports whether text is an affirmative answer: "yes" or "y",
// case-insensitive. Anything else, including empty input, is no.
func IsYes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
