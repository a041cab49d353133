package expenses

import (
	"encoding/json"
	"iter"

	"github.com/shopspring/decimal"
)

// Verdict is the feedback given on an income to expense ratio.
type Verdict int

const (
	NoData Verdict = iota
	NoIncome
	NoExpenses
	Excellent
	Good
	Okay
	Warning
)

func (v Verdict) String() string {
	switch v {
	case NoData:
		return "no data"
	case NoIncome:
		return "no income"
	case NoExpenses:
		return "no expenses"
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Okay:
		return "okay"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Message returns the feedback shown to the user.
func (v Verdict) Message() string {
	switch v {
	case NoData:
		return "No income or expenses recorded."
	case NoIncome:
		return "You haven't recorded any income yet."
	case NoExpenses:
		return "You haven't recorded any expenses yet."
	case Excellent:
		return "Excellent! You're saving a significant portion of your income."
	case Good:
		return "Good! Your income is comfortably covering your expenses, and you have some savings."
	case Okay:
		return "Okay: Your income is covering your expenses, but consider saving more."
	default:
		return "Warning: Your expenses are higher than your income. You may need to cut back on spending."
	}
}

var (
	excellentRatio = decimal.NewFromInt(2)
	goodRatio      = decimal.RequireFromString("1.5")
	okayRatio      = decimal.NewFromInt(1)
)

// Ratio compares total income to total expenses.
type Ratio struct {
	Income   Money           // total income
	Expenses Money           // total expenses, as a positive value
	Value    decimal.Decimal // Income / Expenses, zero unless both are recorded
	Verdict  Verdict
}

// HasValue reports whether Value is meaningful.
func (r Ratio) HasValue() bool { return r.Verdict >= Excellent }

// ComputeRatio computes the ratio over a sequence of transactions.
func ComputeRatio(txs iter.Seq2[int, Transaction]) Ratio {
	var r Ratio
	for _, tx := range txs {
		if tx.category == Income {
			r.Income = r.Income.Add(tx.amount)
		} else {
			r.Expenses = r.Expenses.Add(tx.amount.Abs())
		}
	}
	switch {
	case r.Income.IsZero() && r.Expenses.IsZero():
		r.Verdict = NoData
	case r.Income.IsZero():
		r.Verdict = NoIncome
	case r.Expenses.IsZero():
		r.Verdict = NoExpenses
	default:
		r.Value = r.Income.value.Div(r.Expenses.value)
		switch {
		case r.Value.GreaterThanOrEqual(excellentRatio):
			r.Verdict = Excellent
		case r.Value.GreaterThanOrEqual(goodRatio):
			r.Verdict = Good
		case r.Value.GreaterThanOrEqual(okayRatio):
			r.Verdict = Okay
		default:
			r.Verdict = Warning
		}
	}
	return r
}

// Ratio computes the ratio over the transactions matching all filters.
func (l *Ledger) Ratio(filters ...Filter) Ratio {
	return ComputeRatio(l.Transactions(filters...))
}

// MarshalJSON writes the ratio with a stable key order.
func (r Ratio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("income", r.Income)
	w.Append("expenses", r.Expenses)
	if r.HasValue() {
		w.Append("ratio", json.Number(r.Value.StringFixed(2)))
	}
	w.Append("verdict", r.Verdict.String())
	return w.MarshalJSON()
}
