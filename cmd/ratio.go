package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type ratioCmd struct {
	ledgerFlag
	filterFlags
}

func (*ratioCmd) Name() string     { return "ratio" }
func (*ratioCmd) Synopsis() string { return "compare income to expenses" }
func (*ratioCmd) Usage() string {
	return `xps ratio [filters]

  Divides the total income by the total expenses and gives feedback on the
  result. Accepts the filters of 'xps list'.

Usage Examples:
$ xps ratio -year 2024
`
}

func (c *ratioCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	c.setFilterFlags(f)
}

func (c *ratioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	e.printMarkdown(renderer.Ratio(l.Ratio(filters...), e.cfg.Currency))
	return subcommands.ExitSuccess
}
