package expenses

import (
	"testing"

	"github.com/etnz/expenses/date"
)

// today is the fixed date used by tests to reject future dates.
var today = date.MustParse("2024-06-30")

func fixedClock() date.Date { return today }

// income and expense are helpers for test to create entries from const.
func income(on, amount, details string) Entry {
	return Entry{Category: "I", Date: on, Amount: amount, Details: details}
}

func expense(on, amount, details string) Entry {
	return Entry{Category: "E", Date: on, Amount: amount, Details: details}
}

// newTestLedger creates a ledger with an initial balance and entries, failing the test on any error.
func newTestLedger(t *testing.T, initial string, entries ...Entry) *Ledger {
	t.Helper()
	l, err := CreateLedger(MustParseAmount(initial))
	if err != nil {
		t.Fatalf("CreateLedger(%s) unexpected error: %v", initial, err)
	}
	l.SetClock(fixedClock)
	for _, e := range entries {
		if _, err := l.Add(e); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", e, err)
		}
	}
	return l
}

// assertBalance checks the current balance and that it matches the transactions.
func assertBalance(t *testing.T, l *Ledger, want string) {
	t.Helper()
	if got := l.Balance().String(); got != want {
		t.Errorf("Balance() = %s, want %s", got, want)
	}
	if err := l.VerifyBalance(); err != nil {
		t.Errorf("VerifyBalance() unexpected error: %v", err)
	}
}
