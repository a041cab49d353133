package renderer

import (
	"iter"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
)

// Row is a transaction as displayed in a table.
type Row struct {
	No       int // 1-based ledger index
	Date     string
	Category string
	Amount   string
	Details  string
}

// TransactionsView is the data of the transactions report.
type TransactionsView struct {
	Title   string
	Rows    []Row
	Income  string
	Expense string
}

// RatioView is the data of the ratio report.
type RatioView struct {
	Income   string
	Expenses string
	Ratio    string // empty when there is no ratio
	Verdict  string
	Message  string
}

// BalanceView is the data of the balance report.
type BalanceView struct {
	Current      string
	Initial      string
	Transactions int
	Consistent   bool
	Ratio        RatioView
}

// PeriodRow is one line of the periods report.
type PeriodRow struct {
	Name     string
	Count    int
	Income   string
	Expenses string
	Net      string
	Verdict  string
}

// PeriodsView is the data of the periods report.
type PeriodsView struct {
	Period string
	Rows   []PeriodRow
}

func newRow(i int, tx expenses.Transaction, currency string) Row {
	return Row{
		No:       i + 1,
		Date:     tx.Date().String(),
		Category: tx.Category().String(),
		Amount:   tx.Amount().Display(currency),
		Details:  tx.Details(),
	}
}

func newRatioView(r expenses.Ratio, currency string) RatioView {
	v := RatioView{
		Income:   r.Income.Display(currency),
		Expenses: r.Expenses.Display(currency),
		Verdict:  r.Verdict.String(),
		Message:  r.Verdict.Message(),
	}
	if r.HasValue() {
		v.Ratio = r.Value.StringFixed(2)
	}
	return v
}

// Transactions renders a table of transactions with their ledger number.
func Transactions(title string, txs iter.Seq2[int, expenses.Transaction], currency string) string {
	v := TransactionsView{Title: title}
	var in, out expenses.Money
	for i, tx := range txs {
		v.Rows = append(v.Rows, newRow(i, tx, currency))
		if tx.Category() == expenses.Income {
			in = in.Add(tx.Amount())
		} else {
			out = out.Add(tx.Amount())
		}
	}
	v.Income, v.Expense = in.Display(currency), out.Display(currency)
	return render("transactions", v)
}

// Ratio renders the income to expense ratio with its feedback.
func Ratio(r expenses.Ratio, currency string) string {
	return render("ratio", newRatioView(r, currency))
}

// Balance renders the balances of a ledger.
func Balance(l *expenses.Ledger, currency string) string {
	v := BalanceView{
		Current:      l.Balance().Display(currency),
		Initial:      l.Initial().Display(currency),
		Transactions: l.Len(),
		Consistent:   l.VerifyBalance() == nil,
		Ratio:        newRatioView(l.Ratio(), currency),
	}
	return render("balance", v)
}

// Periods renders income and expenses per calendar period.
func Periods(p date.Period, totals []expenses.PeriodTotals, currency string) string {
	v := PeriodsView{Period: p.String()}
	for _, t := range totals {
		v.Rows = append(v.Rows, PeriodRow{
			Name:     t.Name,
			Count:    t.Count,
			Income:   t.Ratio.Income.Display(currency),
			Expenses: t.Ratio.Expenses.Display(currency),
			Net:      t.Net.Display(currency),
			Verdict:  t.Ratio.Verdict.String(),
		})
	}
	return render("periods", v)
}
