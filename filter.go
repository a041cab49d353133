package expenses

import (
	"fmt"
	"time"

	"github.com/etnz/expenses/date"
)

// Filter selects transactions.
type Filter func(Transaction) bool

func matches(tx Transaction, filters []Filter) bool {
	for _, f := range filters {
		if !f(tx) {
			return false
		}
	}
	return true
}

// ByMonth selects transactions in a month (1 to 12) of any year.
func ByMonth(month int) (Filter, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d not in 1..12", ErrInvalidFilterValue, month)
	}
	return func(tx Transaction) bool { return tx.date.Month() == time.Month(month) }, nil
}

// ByYear selects transactions in a year. Any year is accepted.
func ByYear(year int) (Filter, error) {
	return func(tx Transaction) bool { return tx.date.Year() == year }, nil
}

// ByDay selects transactions on a day of the month (1 to 31) of any month.
func ByDay(day int) (Filter, error) {
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: day %d not in 1..31", ErrInvalidFilterValue, day)
	}
	return func(tx Transaction) bool { return tx.date.Day() == day }, nil
}

// ByDateRange selects transactions between start and end, both included.
func ByDateRange(start, end date.Date) (Filter, error) {
	r, err := date.NewRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return func(tx Transaction) bool { return r.Contains(tx.date) }, nil
}

// ByCategory selects incomes or expenses.
func ByCategory(c Category) (Filter, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: category %d", ErrInvalidFilterValue, c)
	}
	return func(tx Transaction) bool { return tx.category == c }, nil
}

// Filter returns the transactions matching all filters, in ledger order.
// It never modifies the ledger.
func (l *Ledger) Filter(filters ...Filter) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}
