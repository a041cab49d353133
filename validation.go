package expenses

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses/date"
)

// Entry is raw, unvalidated user input for a transaction.
//
// An empty field means "not supplied".
type Entry struct {
	Category string
	Date     string
	Amount   string
	Details  string
}

// Validate checks all the fields of e together against the current balance
// and returns the normalized transaction.
//
// Category, date and amount are required, details are optional. The amount
// is signed according to the category whatever sign the user typed.
func Validate(e Entry, balance Money, today date.Date) (Transaction, error) {
	if e.Category == "" {
		return Transaction{}, invalid("category", e.Category, ErrInvalidCategory)
	}
	if e.Date == "" {
		return Transaction{}, invalid("date", e.Date, ErrInvalidDate)
	}
	if e.Amount == "" {
		return Transaction{}, invalid("amount", e.Amount, ErrInvalidAmount)
	}
	amount, err := Check(e, balance, today)
	if err != nil {
		return Transaction{}, err
	}
	// Check has already parsed everything.
	category, _ := ParseCategory(e.Category)
	on, _ := validateDate(e.Date, today)
	details, _ := validateDetails(e.Details)
	return NewTransaction(on, category, amount, details)
}

// Check validates only the supplied fields of e, in order: category, date,
// amount and details. It returns the normalized amount when both the
// category and the amount are supplied, or the amount as typed otherwise.
//
// It lets an interactive caller validate input one field at a time.
func Check(e Entry, balance Money, today date.Date) (Money, error) {
	var category Category
	if e.Category != "" {
		c, err := validateCategory(e.Category)
		if err != nil {
			return Money{}, err
		}
		category = c
	}
	if e.Date != "" {
		if _, err := validateDate(e.Date, today); err != nil {
			return Money{}, err
		}
	}
	var amount Money
	if e.Amount != "" {
		a, err := validateAmount(e.Amount)
		if err != nil {
			return Money{}, err
		}
		amount = a
		if category.Valid() {
			amount = a.Normalize(category)
			if err := checkFunds(balance, amount); err != nil {
				return Money{}, err
			}
		}
	}
	if e.Details != "" {
		if _, err := validateDetails(e.Details); err != nil {
			return Money{}, err
		}
	}
	return amount, nil
}

func validateCategory(s string) (Category, error) {
	c, err := ParseCategory(s)
	if err != nil {
		return 0, invalid("category", s, ErrInvalidCategory)
	}
	return c, nil
}

func validateDate(s string, today date.Date) (date.Date, error) {
	on, err := date.Parse(strings.TrimSpace(s))
	if err != nil {
		return date.Date{}, invalid("date", s, fmt.Errorf("%w: want YYYY-MM-DD", ErrInvalidDate))
	}
	if on.After(today) {
		return date.Date{}, invalid("date", s, fmt.Errorf("%w: %s is after %s", ErrFutureDate, on, today))
	}
	return on, nil
}

// validateAmount parses a non-zero amount. Its sign is not checked.
func validateAmount(s string) (Money, error) {
	a, err := ParseAmount(s)
	if err != nil {
		return Money{}, invalid("amount", s, err)
	}
	if a.IsZero() {
		return Money{}, invalid("amount", s, ErrZeroAmount)
	}
	return a, nil
}

// checkFunds rejects a balance change that would make the balance negative.
func checkFunds(balance, delta Money) error {
	if after := balance.Add(delta); after.IsNegative() {
		return invalid("amount", delta.String(), fmt.Errorf("%w: balance %s would become %s", ErrInsufficientFunds, balance, after))
	}
	return nil
}

// validateDetails returns the trimmed details. Empty input is accepted.
func validateDetails(s string) (string, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", invalid("details", s, ErrInvalidDetails)
	}
	trimmed := strings.TrimSpace(s)
	if s != "" && trimmed == "" {
		return "", invalid("details", s, ErrBlankDetails)
	}
	return trimmed, nil
}
