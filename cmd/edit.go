package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type editCmd struct {
	ledgerFlag
	number int
	field  string
	value  string
	yes    bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change one field of an entry" }
func (*editCmd) Usage() string {
	return `xps edit -n <number> -f date|category|amount|details -value <value> [-y]

  Changes one field of the entry numbered as in 'xps list'. Changing the
  category flips the sign of the amount. An amount whose sign contradicts the
  category asks whether the category should change, -y answers yes.

Usage Examples:
$ xps edit -n 2 -f category -value I
$ xps edit -n 1 -f details -value "groceries and wine"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.IntVar(&c.number, "n", 0, "Number of the entry, as shown by 'xps list'.")
	f.StringVar(&c.field, "f", "", "Field to change: date, category, amount or details.")
	f.StringVar(&c.value, "value", "", "New value of the field.")
	f.BoolVar(&c.yes, "y", false, "Answer yes to questions.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := expenses.ParseField(c.field)
	if err != nil {
		return failure(err)
	}
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	s, err := e.open()
	if err != nil {
		return failure(err)
	}

	res, err := s.Update(c.number-1, field, c.value, confirmation(c.yes))
	if errors.Is(err, expenses.ErrUpdateCancelled) {
		fmt.Fprintln(stdout, "Update cancelled.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		return failure(err)
	}
	success("Updated entry %d: %s. Balance: %s.", c.number, res.After, s.Ledger().Balance().Display(e.cfg.Currency))
	if !res.Delta.IsZero() {
		fmt.Fprintf(stdout, "Balance changed by %s.\n", res.Delta.Display(e.cfg.Currency))
	}
	return subcommands.ExitSuccess
}
