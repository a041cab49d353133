package expenses

import (
	"fmt"
	"strings"
)

// Category tells whether a transaction is an income or an expense.
type Category int

const (
	Income Category = iota + 1
	Expense
)

// String returns "Income" or "Expense".
func (c Category) String() string {
	switch c {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// Code returns the one letter code used in ledger files.
func (c Category) Code() string {
	switch c {
	case Income:
		return "I"
	case Expense:
		return "E"
	default:
		return "?"
	}
}

// Valid reports whether c is Income or Expense.
func (c Category) Valid() bool { return c == Income || c == Expense }

// Sign is +1 for Income and -1 for Expense.
func (c Category) Sign() int {
	if c == Expense {
		return -1
	}
	return 1
}

// ParseCategory parses "I", "E", "Income" or "Expense", ignoring case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "income":
		return Income, nil
	case "e", "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q, want I or E", ErrInvalidCategory, s)
	}
}

// parseCode parses the strict file form "I" or "E".
func parseCode(s string) (Category, error) {
	switch s {
	case "I":
		return Income, nil
	case "E":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q, want I or E", ErrInvalidCategory, s)
	}
}
