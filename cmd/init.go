package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type initCmd struct {
	ledgerFlag
	initial string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new ledger file with an initial balance" }
func (*initCmd) Usage() string {
	return `xps init -b <initial balance> [-l <ledger file>]

  Creates a new ledger file. Without -l, and without a configured ledger, the
  file is named after the current time, like transactions_2024-03-07_09-05-03.txt.
  An existing file is never overwritten.

Usage Examples:
$ xps init -b 1,000.00 -l ledger.txt
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.StringVar(&c.initial, "b", "0", "Initial balance, zero or positive.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	initial, err := expenses.ParseAmount(c.initial)
	if err != nil {
		return failure(err)
	}
	path := e.cfg.LedgerFile
	if path == "" {
		path = expenses.GenerateFilename(time.Now())
	}

	s, err := expenses.CreateSession(path, initial, expenses.WithLogger(e.log))
	if err != nil {
		return failure(err)
	}
	success("Created ledger %s with an initial balance of %s.", s.Path(), initial.Display(e.cfg.Currency))
	return subcommands.ExitSuccess
}
