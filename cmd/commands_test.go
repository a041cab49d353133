package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	path := isolate(t)

	status, out, errOut := run(t, &initCmd{}, "", "-b", "1,000")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "$1,000.00")
	assert.Equal(t, "Current Balance: 1,000.00\nInitial Balance: 1,000.00\n\nTransactions Record: \n", readLedger(t, path))

	status, _, errOut = run(t, &initCmd{}, "", "-b", "5")
	assert.Equal(t, subcommands.ExitFailure, status, "an existing ledger is never overwritten")
	assert.Contains(t, errOut, "Error:")
}

func TestInit_GeneratedName(t *testing.T) {
	isolate(t)
	*ledgerFile = ""

	status, _, errOut := run(t, &initCmd{}, "", "-b", "10")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)

	files, err := filepath.Glob("transactions_*.txt")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestInit_NegativeBalance(t *testing.T) {
	path := isolate(t)

	status, _, _ := run(t, &initCmd{}, "", "-b", "-5")
	assert.Equal(t, subcommands.ExitFailure, status)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAdd(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, out, errOut := run(t, &addCmd{}, "", "-c", "E", "-d", "2024-01-12", "-a", "100", "-m", "books")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "Balance: $1,200.00")
	assert.Equal(t, `Current Balance: 1,200.00
Initial Balance: 1,000.00

Transactions Record: 
2024-01-12 E -100.00 books
2024-01-10 E -200.00 groceries
2024-01-05 I 500.00 salary
`, readLedger(t, path))
}

func TestAdd_Rejected(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"insufficient funds", []string{"-c", "E", "-d", "2024-01-12", "-a", "5000"}, "insufficient"},
		{"bad category", []string{"-c", "X", "-d", "2024-01-12", "-a", "5"}, "category"},
		{"bad date", []string{"-c", "I", "-d", "2024-13-01", "-a", "5"}, "date"},
		{"zero amount", []string{"-c", "I", "-d", "2024-01-12", "-a", "0"}, "amount"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := isolate(t)
			writeLedger(t, path, sample)

			status, _, errOut := run(t, &addCmd{}, "", tc.args...)
			assert.Equal(t, subcommands.ExitFailure, status)
			assert.Contains(t, strings.ToLower(errOut), tc.want)
			assert.Equal(t, sample, readLedger(t, path), "a rejected entry leaves the file untouched")
		})
	}
}

func TestEdit(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, out, errOut := run(t, &editCmd{}, "", "-n", "1", "-f", "category", "-value", "I")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "Balance: $1,700.00")
	assert.Contains(t, readLedger(t, path), "Current Balance: 1,700.00\n")
	assert.Contains(t, readLedger(t, path), "2024-01-10 I 200.00 groceries\n")
}

func TestEdit_SignConflict(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		args    []string
		want    string
		changed bool
	}{
		{"declined", "n\n", []string{"-n", "2", "-f", "amount", "-value", "-50"}, "Update cancelled.", false},
		{"accepted", "y\n", []string{"-n", "2", "-f", "amount", "-value", "-50"}, "Balance: $750.00", true},
		{"yes flag", "", []string{"-n", "2", "-f", "amount", "-value", "-50", "-y"}, "Balance: $750.00", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := isolate(t)
			writeLedger(t, path, sample)

			status, out, errOut := run(t, &editCmd{}, tc.input, tc.args...)
			require.Equal(t, subcommands.ExitSuccess, status, errOut)
			assert.Contains(t, out, tc.want)
			if tc.changed {
				assert.Contains(t, readLedger(t, path), "2024-01-05 E -50.00 salary\n")
			} else {
				assert.Equal(t, sample, readLedger(t, path))
			}
		})
	}
}

func TestEdit_InvalidField(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, _, errOut := run(t, &editCmd{}, "", "-n", "1", "-f", "color", "-value", "red")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "field")
}

func TestRm(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		args  []string
		want  string
		file  string
	}{
		{"confirmed", "y\n", []string{"-n", "1"}, "Balance: $1,500.00", "Current Balance: 1,500.00\nInitial Balance: 1,000.00\n\nTransactions Record: \n2024-01-05 I 500.00 salary\n"},
		{"yes flag", "", []string{"-n", "1", "-y"}, "Balance: $1,500.00", "Current Balance: 1,500.00\nInitial Balance: 1,000.00\n\nTransactions Record: \n2024-01-05 I 500.00 salary\n"},
		{"declined", "n\n", []string{"-n", "1"}, "Deletion cancelled.", sample},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := isolate(t)
			writeLedger(t, path, sample)

			status, out, errOut := run(t, &rmCmd{}, tc.input, tc.args...)
			require.Equal(t, subcommands.ExitSuccess, status, errOut)
			assert.Contains(t, out, tc.want)
			assert.Equal(t, tc.file, readLedger(t, path))
		})
	}
}

func TestRm_OutOfRange(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, _, _ := run(t, &rmCmd{}, "", "-n", "3", "-y")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, sample, readLedger(t, path))
}

func TestList(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, out, errOut := run(t, &listCmd{}, "", "-c", "E")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "groceries")
	assert.NotContains(t, out, "salary")
}

func TestList_InvalidFilter(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"month", []string{"-month", "13"}},
		{"day", []string{"-day", "0"}},
		{"year", []string{"-year", "0"}},
		{"half range", []string{"-from", "2024-01-01"}},
		{"reversed range", []string{"-from", "2024-02-01", "-to", "2024-01-01"}},
		{"category", []string{"-c", "X"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := isolate(t)
			writeLedger(t, path, sample)

			status, _, errOut := run(t, &listCmd{}, "", tc.args...)
			assert.Equal(t, subcommands.ExitFailure, status)
			assert.Contains(t, errOut, "Error:")
		})
	}
}

func TestBalance_Corrupt(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, strings.Replace(sample, "1,300.00", "1,250.00", 1))

	status, _, errOut := run(t, &balanceCmd{}, "")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "xps fmt -repair")
}

func TestFmt(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, `Current Balance: 1300
Initial Balance: 1000.00

Transactions Record: 
2024-01-05 I 500 salary
2024-01-10 E -200.00 groceries
`)

	status, _, errOut := run(t, &fmtCmd{}, "")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Equal(t, sample, readLedger(t, path))
}

func TestFmt_Repair(t *testing.T) {
	path := isolate(t)
	broken := strings.Replace(sample, "1,300.00", "9.99", 1)
	writeLedger(t, path, broken)

	status, _, _ := run(t, &fmtCmd{}, "")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, broken, readLedger(t, path))

	status, _, errOut := run(t, &fmtCmd{}, "", "-repair")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Equal(t, sample, readLedger(t, path))
}

func TestExport(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, out, errOut := run(t, &exportCmd{}, "")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)

	var got struct {
		CurrentBalance float64 `json:"currentBalance"`
		Transactions   []struct {
			No       int    `json:"no"`
			Category string `json:"category"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1300.0, got.CurrentBalance)
	require.Len(t, got.Transactions, 2)
	assert.Equal(t, "Expense", got.Transactions[0].Category)
	assert.Equal(t, 2, got.Transactions[1].No)
}

func TestQuery(t *testing.T) {
	path := isolate(t)
	writeLedger(t, path, sample)

	status, out, errOut := run(t, &queryCmd{}, "", `$.transactions[?(@.category == "Income")].details`)
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.JSONEq(t, `["salary"]`, out)

	status, _, _ = run(t, &queryCmd{}, "")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestTopic(t *testing.T) {
	isolate(t)

	status, out, errOut := run(t, &topicCmd{}, "", "ratio")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "Ratio")

	status, _, _ = run(t, &topicCmd{}, "", "unknown")
	assert.Equal(t, subcommands.ExitFailure, status)
}
