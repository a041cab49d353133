package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledgerFlag
	repair bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `xps fmt [-repair]

  Validates and formats the ledger file. This command reads all entries,
  validates them, sorts them by date and writes them back in the canonical
  format. A ledger whose current balance does not match its entries is
  refused, unless -repair is given: the current balance is then recomputed.

Usage Examples:
$ xps fmt -repair
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.BoolVar(&c.repair, "repair", false, "Recompute a wrong current balance.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	path, err := e.ledgerPath()
	if err != nil {
		return failure(err)
	}

	var opts []expenses.DecodeOption
	if c.repair {
		opts = append(opts, expenses.Repair(e.log))
	}
	l, err := expenses.LoadLedger(path, opts...)
	if err != nil {
		return failure(err)
	}
	if err := expenses.SaveLedger(path, l); err != nil {
		return failure(err)
	}
	success("Ledger file %q has been formatted.", path)
	return subcommands.ExitSuccess
}
