package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	ledgerFlag
	filterFlags
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the entries, most recent first" }
func (*listCmd) Usage() string {
	return `xps list [-day <d>] [-month <m>] [-year <y>] [-from <date> -to <date>] [-c I|E]

  Lists the entries of the ledger, most recent first. Filters can be combined,
  an entry is listed if it matches all of them. Entries keep their ledger
  number, use it with 'xps edit' and 'xps rm'.

Usage Examples:
$ xps list -year 2024 -month 1
$ xps list -from 2024-01-01 -to 2024-03-31 -c E
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	c.setFilterFlags(f)
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters(f)
	if err != nil {
		return failure(err)
	}
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	l, err := e.load()
	if err != nil {
		return failure(err)
	}

	e.printMarkdown(renderer.Transactions("Transactions"+c.title(), l.Transactions(filters...), e.cfg.Currency))
	return subcommands.ExitSuccess
}
