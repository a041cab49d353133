package expenses

import (
	"fmt"
	"strings"
)

// Field is a transaction field that can be updated.
type Field int

const (
	FieldDate Field = iota + 1
	FieldCategory
	FieldAmount
	FieldDetails
)

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldCategory:
		return "category"
	case FieldAmount:
		return "amount"
	case FieldDetails:
		return "details"
	default:
		return "unknown"
	}
}

// ParseField parses a field name or its menu number (1 to 4).
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "date":
		return FieldDate, nil
	case "2", "category":
		return FieldCategory, nil
	case "3", "amount":
		return FieldAmount, nil
	case "4", "details":
		return FieldDetails, nil
	default:
		return 0, fmt.Errorf("%w: %q, want date, category, amount or details", ErrInvalidField, s)
	}
}

// Confirm asks the user a yes/no question. A nil Confirm answers no.
type Confirm func(prompt string) bool

// Yes is a Confirm that accepts every prompt.
func Yes(string) bool { return true }

func (c Confirm) ask(prompt string) bool { return c != nil && c(prompt) }

// UpdateState is the outcome of an update.
type UpdateState int

const (
	Applied   UpdateState = iota + 1 // the ledger has changed
	Cancelled                        // the user declined a confirmation
	Rejected                         // the new value is invalid
)

func (s UpdateState) String() string {
	switch s {
	case Applied:
		return "applied"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// UpdateResult describes an update.
type UpdateResult struct {
	State  UpdateState
	Field  Field
	Before Transaction
	After  Transaction
	Delta  Money // change applied to the balance
}

// Update changes one field of the transaction at index i.
//
// The new value is fully validated before anything changes. Changing the
// category flips the sign of the amount and moves the balance by the
// difference. Typing an amount whose sign contradicts the category asks
// confirm whether the category should follow the sign; declining returns
// ErrUpdateCancelled.
func (l *Ledger) Update(i int, field Field, value string, confirm Confirm) (UpdateResult, error) {
	res := UpdateResult{State: Rejected, Field: field}
	if err := l.checkIndex(i); err != nil {
		return res, err
	}
	before := l.transactions[i]
	res.Before, res.After = before, before
	after := before

	switch field {
	case FieldDate:
		on, err := validateDate(value, l.Today())
		if err != nil {
			return res, err
		}
		after.date = on

	case FieldCategory:
		category, err := validateCategory(value)
		if err != nil {
			return res, err
		}
		after.category = category
		after.amount = before.amount.Normalize(category)

	case FieldAmount:
		amount, err := validateAmount(value)
		if err != nil {
			return res, err
		}
		if amount.Sign() != before.category.Sign() {
			other := Income
			if amount.IsNegative() {
				other = Expense
			}
			prompt := fmt.Sprintf("Amount %s does not match category %s. Change category to %s?", amount, before.category, other)
			if !confirm.ask(prompt) {
				res.State = Cancelled
				return res, ErrUpdateCancelled
			}
			after.category = other
		}
		after.amount = amount.Normalize(after.category)

	case FieldDetails:
		details, err := validateDetails(value)
		if err != nil {
			return res, err
		}
		after.details = details

	default:
		return res, fmt.Errorf("%w: %d", ErrInvalidField, field)
	}

	delta := after.amount.Sub(before.amount)
	if !delta.IsZero() {
		if err := checkFunds(l.current, delta); err != nil {
			return res, err
		}
	}

	l.transactions[i] = after
	l.current = l.current.Add(delta)
	if field == FieldDate {
		l.stableSort()
	}
	res.State, res.After, res.Delta = Applied, after, delta
	return res, nil
}
