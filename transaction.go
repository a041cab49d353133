package expenses

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses/date"
)

// Transaction is a single income or expense entry.
//
// Transactions are values. The amount is never zero and its sign always
// matches the category: positive for Income, negative for Expense.
type Transaction struct {
	date     date.Date
	category Category
	amount   Money
	details  string
}

// NewTransaction returns a transaction after checking its invariants.
//
// Details are trimmed and may be empty.
func NewTransaction(on date.Date, category Category, amount Money, details string) (Transaction, error) {
	tx := Transaction{date: on, category: category, amount: amount, details: strings.TrimSpace(details)}
	if err := tx.check(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// MustNewTransaction is like NewTransaction but panics on error.
func MustNewTransaction(on date.Date, category Category, amount Money, details string) Transaction {
	tx, err := NewTransaction(on, category, amount, details)
	if err != nil {
		panic(err.Error())
	}
	return tx
}

func (t Transaction) check() error {
	switch {
	case t.date.IsZero():
		return fmt.Errorf("%w: missing date", ErrInvalidDate)
	case !t.category.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidCategory, t.category)
	case t.amount.IsZero():
		return ErrZeroAmount
	case t.amount.Sign() != t.category.Sign():
		return fmt.Errorf("%w: %s amount %s has the wrong sign", ErrInvalidAmount, t.category, t.amount)
	case strings.ContainsAny(t.details, "\r\n"):
		return ErrInvalidDetails
	}
	return nil
}

// Date returns the date of the transaction.
func (t Transaction) Date() date.Date { return t.date }

// Category returns Income or Expense.
func (t Transaction) Category() Category { return t.category }

// Amount returns the signed amount.
func (t Transaction) Amount() Money { return t.amount }

// Details returns the free text description, possibly empty.
func (t Transaction) Details() string { return t.details }

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s", t.date, t.category.Code(), t.amount, t.details)
}

// MarshalJSON writes the transaction with a stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.date)
	w.Append("category", t.category.String())
	w.Append("amount", t.amount)
	w.Optional("details", t.details)
	return w.MarshalJSON()
}
