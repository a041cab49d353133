package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type exportCmd struct {
	ledgerFlag
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger as JSON" }
func (*exportCmd) Usage() string {
	return `xps export

  Writes the ledger, its balances and its ratio as JSON on stdout.

Usage Examples:
$ xps export > ledger.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) { c.setLedgerFlag(f) }

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	l, err := e.load()
	if err != nil {
		return failure(err)
	}
	if err := expenses.EncodeJSON(stdout, l); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
