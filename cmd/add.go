package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type addCmd struct {
	ledgerFlag
	category string
	date     string
	amount   string
	details  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an income or an expense" }
func (*addCmd) Usage() string {
	return `xps add -c I|E -d <YYYY-MM-DD> -a <amount> [-m <details>]

  Adds an entry to the ledger. The date defaults to today. Expenses larger
  than the current balance are refused.

Usage Examples:
$ xps add -c I -d 2024-01-05 -a 500 -m salary
$ xps add -c E -a 12.50 -m lunch
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.StringVar(&c.category, "c", "", "Category: I for income, E for expense.")
	f.StringVar(&c.date, "d", "", "Date of the entry (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.amount, "a", "", "Amount, with up to two decimals.")
	f.StringVar(&c.details, "m", "", "Details, a single line of text.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	s, err := e.open()
	if err != nil {
		return failure(err)
	}

	entry := expenses.Entry{
		Category: c.category,
		Date:     c.date,
		Amount:   c.amount,
		Details:  c.details,
	}
	if entry.Date == "" {
		entry.Date = s.Ledger().Today().String()
	}
	tx, err := s.Add(entry)
	if err != nil {
		return failure(err)
	}
	success("Added %s of %s on %s. Balance: %s.",
		strings.ToLower(tx.Category().String()), tx.Amount().Abs().Display(e.cfg.Currency), tx.Date(),
		s.Ledger().Balance().Display(e.cfg.Currency))
	return subcommands.ExitSuccess
}
