package expenses

import (
	"slices"

	"github.com/etnz/expenses/date"
)

// PeriodTotals aggregates the transactions of one calendar period.
type PeriodTotals struct {
	Range date.Range
	Name  string // e.g. "2024-01" for a month
	Count int
	Ratio Ratio
	Net   Money // income minus expenses
}

// Periods groups the transactions matching all filters by calendar period,
// most recent period first. Periods without transactions are omitted.
func (l *Ledger) Periods(p date.Period, filters ...Filter) []PeriodTotals {
	var (
		totals []PeriodTotals
		group  []Transaction
		cur    date.Range
	)
	flush := func() {
		if len(group) == 0 {
			return
		}
		r := ComputeRatio(slices.All(group))
		totals = append(totals, PeriodTotals{
			Range: cur,
			Name:  cur.Identifier(p),
			Count: len(group),
			Ratio: r,
			Net:   r.Income.Sub(r.Expenses),
		})
		group = group[:0]
	}
	for _, tx := range l.Transactions(filters...) {
		if rg := date.PeriodRange(tx.date, p); rg != cur {
			flush()
			cur = rg
		}
		group = append(group, tx)
	}
	flush()
	return totals
}
