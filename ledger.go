package expenses

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/etnz/expenses/date"
)

// Ledger is a list of transactions with an initial and a current balance.
//
// In a Ledger transactions are always sorted by date, most recent first;
// transactions on the same day keep their insertion order. The current
// balance always equals the initial balance plus the sum of all amounts.
type Ledger struct {
	initial      Money
	current      Money
	transactions []Transaction
	today        func() date.Date
}

// NewLedger creates an empty ledger with a zero balance.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0), today: date.Today}
}

// CreateLedger creates an empty ledger with an initial balance.
func CreateLedger(initial Money) (*Ledger, error) {
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeInitialBalance, initial)
	}
	l := NewLedger()
	l.initial, l.current = initial, initial
	return l, nil
}

// SetClock replaces the function used to get today's date when rejecting
// future dates.
func (l *Ledger) SetClock(today func() date.Date) { l.today = today }

// Today returns the ledger's current date.
func (l *Ledger) Today() date.Date {
	if l.today == nil {
		return date.Today()
	}
	return l.today()
}

// Initial returns the initial balance.
func (l *Ledger) Initial() Money { return l.initial }

// Balance returns the current balance.
func (l *Ledger) Balance() Money { return l.current }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// At returns the transaction at index i (0-based).
func (l *Ledger) At(i int) (Transaction, error) {
	if err := l.checkIndex(i); err != nil {
		return Transaction{}, err
	}
	return l.transactions[i], nil
}

// Transactions iterates over the transactions matching all filters, with
// their index in the ledger.
func (l *Ledger) Transactions(filters ...Filter) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if matches(tx, filters) && !yield(i, tx) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := *l
	c.transactions = slices.Clone(l.transactions)
	return &c
}

// Validate checks an entry against the current balance and date.
func (l *Ledger) Validate(e Entry) (Transaction, error) {
	return Validate(e, l.current, l.Today())
}

// Check validates the supplied fields of an entry against the current balance and date.
func (l *Ledger) Check(e Entry) (Money, error) {
	return Check(e, l.current, l.Today())
}

// Add validates an entry and appends it to the ledger.
func (l *Ledger) Add(e Entry) (Transaction, error) {
	tx, err := l.Validate(e)
	if err != nil {
		return Transaction{}, err
	}
	l.current = l.current.Add(tx.amount)
	l.transactions = append(l.transactions, tx)
	l.stableSort()
	return tx, nil
}

// Delete removes the transaction at index i and reverts its effect on the balance.
func (l *Ledger) Delete(i int) (Transaction, error) {
	if err := l.checkIndex(i); err != nil {
		return Transaction{}, err
	}
	tx := l.transactions[i]
	l.transactions = slices.Delete(l.transactions, i, i+1)
	l.current = l.current.Sub(tx.amount)
	return tx, nil
}

// VerifyBalance checks that the current balance equals the initial balance
// plus all amounts.
func (l *Ledger) VerifyBalance() error {
	if want := l.computeBalance(); !want.Equal(l.current) {
		return fmt.Errorf("%w: recorded %s, transactions add up to %s", ErrBalanceMismatch, l.current, want)
	}
	return nil
}

func (l *Ledger) computeBalance() Money {
	sum := l.initial
	for _, tx := range l.transactions {
		sum = sum.Add(tx.amount)
	}
	return sum
}

func (l *Ledger) checkIndex(i int) error {
	if len(l.transactions) == 0 {
		return ErrEmptyLedger
	}
	if i < 0 || i >= len(l.transactions) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrIndexOutOfRange, i+1, len(l.transactions))
	}
	return nil
}

// stableSort sorts the ledger by transaction date, most recent first. The
// sort is stable, meaning that transactions on the same day keep their
// relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].date.After(l.transactions[j].date)
	})
}
