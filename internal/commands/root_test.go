package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RunsMenuAndQuits(t *testing.T) {
	out, err := executeRoot(t, "5\n", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "=== Tally Menu ===")
	assert.Contains(t, out, "Goodbye!")
}

func TestRoot_ImportSeedsSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "past.csv")
	csv := "description,amount,recurring,date,kind,category\n" +
		"Salary,5000,yes,2025-01-04,income,Work\n" +
		"Rent,2000,y,2024-01-01,expense,Housing\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out, err := executeRoot(t, "2\n5\n",
		"--config", filepath.Join(dir, "none.yaml"),
		"--import", path,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Imported 2 transactions from "+path)
	assert.Contains(t, out, "Total Income: $5000.00")
	assert.Contains(t, out, "Net Balance: $3000.00")
}

func TestRoot_ImportUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "past.csv")
	require.NoError(t, os.WriteFile(path, []byte("description,amount,recurring,date,kind,category\n"), 0o644))

	_, err := executeRoot(t, "",
		"--config", filepath.Join(dir, "none.yaml"),
		"--import", path,
		"--format", "qif",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown import format "qif"`)
}

func TestRoot_ConfigFileControlsCurrency(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tally.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("currency: \"£\"\n"), 0o644))

	out, err := executeRoot(t, "2\n5\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Income: £0.00")
}

func TestRoot_Version(t *testing.T) {
	out, err := executeRoot(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "tally version")
}
