package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type rmCmd struct {
	ledgerFlag
	number int
	yes    bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entry" }
func (*rmCmd) Usage() string {
	return `xps rm -n <number> [-y]

  Deletes the entry numbered as in 'xps list' and reverts its effect on the
  balance. Asks for confirmation unless -y is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.IntVar(&c.number, "n", 0, "Number of the entry, as shown by 'xps list'.")
	f.BoolVar(&c.yes, "y", false, "Delete without confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	s, err := e.open()
	if err != nil {
		return failure(err)
	}

	tx, err := s.Delete(c.number-1, confirmation(c.yes))
	if errors.Is(err, expenses.ErrDeleteCancelled) {
		fmt.Fprintln(stdout, "Deletion cancelled.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		return failure(err)
	}
	success("Deleted entry %d: %s. Balance: %s.", c.number, tx, s.Ledger().Balance().Display(e.cfg.Currency))
	return subcommands.ExitSuccess
}
