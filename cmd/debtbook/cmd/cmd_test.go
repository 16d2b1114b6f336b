package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addedID = regexp.MustCompile(`Added .+ \(([^)]+)\)`)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_BACKEND", "bolt")
	t.Setenv("BOLT_PATH", filepath.Join(dir, "cli.bolt"))
	t.Setenv("CURRENCY", "USD")
	t.Setenv("LOCALE", "en")
	t.Setenv("AMQP_URL", "")
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(args, &stdout, &stderr)
	return stdout.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	require.NoError(t, err, "debtbook %v", args)
	return out
}

func addPerson(t *testing.T, args ...string) string {
	t.Helper()
	out := mustRun(t, append([]string{"add-person"}, args...)...)
	m := addedID.FindStringSubmatch(out)
	require.Len(t, m, 2, "unexpected output %q", out)
	return m[1]
}

func TestLedgerWorkflow(t *testing.T) {
	setupEnv(t)

	annaID := addPerson(t, "Anna", "--contact", "555")
	mustRun(t, "add-tx", "lent", "500", "--date", "2024-01-10", "--note", "rent")
	mustRun(t, "add-tx", "repay_to_me", "200", "--date", "2024-02-01")

	out := mustRun(t, "statement")
	assert.Contains(t, out, "Anna (555)")
	assert.Contains(t, out, "Lent to them")
	assert.Contains(t, out, "Repaid to me")
	assert.Regexp(t, `Balance: \S+ 300\.00 \(owed to you\)`, out)

	out = mustRun(t, "statement", "--from", "2024-02-01")
	assert.Regexp(t, `Balance: \S+ 200\.00 \(you owe\)`, out)
	assert.Regexp(t, `Overall: \S+ 300\.00 \(owed to you\)`, out)

	out = mustRun(t, "summary")
	assert.Regexp(t, `Owed to me: +\S+ 500\.00`, out)
	assert.Regexp(t, `I owe: +\S+ 200\.00`, out)
	assert.Contains(t, out, "Transactions:  2")

	out = mustRun(t, "info", annaID)
	assert.Regexp(t, `Balance: +\S+ 300\.00 \(owed to you\)`, out)

	out = mustRun(t, "settle", annaID)
	assert.Regexp(t, `Repaid to me \S+ 300\.00`, out)

	out = mustRun(t, "people")
	assert.Contains(t, out, "Anna")
	assert.Contains(t, out, "(settled)")
}

func TestPeopleSearchAndSelection(t *testing.T) {
	setupEnv(t)

	boID := addPerson(t, "Bo")
	addPerson(t, "Carl", "--contact", "carl@example.com")

	out := mustRun(t, "select")
	assert.Contains(t, out, "Selected Carl")

	out = mustRun(t, "select", boID)
	assert.Contains(t, out, "Selected Bo")

	out = mustRun(t, "people", "EXAMPLE")
	assert.Contains(t, out, "Carl")
	assert.NotContains(t, out, "Bo ")

	out = mustRun(t, "people", "nobody")
	assert.Equal(t, "No people found.\n", out)

	mustRun(t, "add-tx", "borrowed", "12,50")
	out = mustRun(t, "delete-person", boID)
	assert.Equal(t, "Deleted "+boID+" and 1 transaction(s)\n", out)

	out = mustRun(t, "statement")
	assert.Equal(t, "No person selected.\n", out)
}

func TestErrorsLeaveStoreUsable(t *testing.T) {
	setupEnv(t)
	addPerson(t, "Dana")

	_, err := runCLI(t, "add-tx", "gift", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction kind")

	_, err = runCLI(t, "delete-tx", "missing")
	require.Error(t, err)

	_, err = runCLI(t, "export", "--format", "xml")
	require.Error(t, err)

	out := mustRun(t, "summary")
	assert.Contains(t, out, "Transactions:  0")
}

func TestFilter(t *testing.T) {
	setupEnv(t)

	assert.Equal(t, "No date filter.\n", mustRun(t, "filter"))
	assert.Equal(t, "Date filter: 2024-01-01 to -\n", mustRun(t, "filter", "--from", "2024-01-01"))
	assert.Equal(t, "Date filter: 2024-01-01 to -\n", mustRun(t, "filter"))
	assert.Equal(t, "No date filter.\n", mustRun(t, "filter", "--clear"))

	_, err := runCLI(t, "filter", "--from", "01/01/2024")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := setupEnv(t)

	addPerson(t, "Eve")
	mustRun(t, "add-tx", "lent", "42", "--date", "2024-03-01", "--due", "2024-03-31")

	csvOut := mustRun(t, "export", "--format", "csv")
	assert.Equal(t, "person,contact,tx_date,due,type,amount,signed,note\nEve,,2024-03-01,2024-03-31,lent,42,42,\n", csvOut)

	backup := filepath.Join(dir, "backup.json")
	out := mustRun(t, "export", "-o", backup)
	assert.Equal(t, "Wrote "+backup+"\n", out)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "people")
	assert.Contains(t, doc, "tx")

	addPerson(t, "Frank")
	out = mustRun(t, "import", backup)
	assert.Equal(t, "Imported 1 people and 1 transactions\n", out)

	out = mustRun(t, "people")
	assert.Contains(t, out, "Eve")
	assert.NotContains(t, out, "Frank")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"people": [], "tx": {}}`), 0o600))
	_, err = runCLI(t, "import", bad)
	assert.Error(t, err)

	out = mustRun(t, "people")
	assert.Contains(t, out, "Eve", "failed import changes nothing")
}

func TestDashboardOutput(t *testing.T) {
	setupEnv(t)

	addPerson(t, "Gus")
	mustRun(t, "add-tx", "lent", "100", "--date", "2024-01-05", "--due", "2024-01-10")

	out := mustRun(t, "dashboard", "--as-of", "2024-02-15", "--months", "2")
	assert.Contains(t, out, "=== Dashboard as of 2024-02-15 ===")
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "Lent to them")
	assert.Contains(t, out, "31-60")
	assert.Contains(t, out, "Gus")
}
