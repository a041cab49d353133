package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses/date"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	ledgerFlag
	filterFlags
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "totals per day, week, month, quarter or year" }
func (*summaryCmd) Usage() string {
	return `xps summary [-p day|week|month|quarter|year] [filters]

  Groups the entries by calendar period and shows the income, the expenses,
  the net result and the ratio feedback of each period, most recent first.
  Accepts the filters of 'xps list'.

Usage Examples:
$ xps summary -p quarter -year 2024
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	c.setFilterFlags(f)
	f.StringVar(&c.period, "p", "month", "Period: day, week, month, quarter or year.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return failure(err)
	}
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
	e.printMarkdown(renderer.Periods(period, l.Periods(period, filters...), e.cfg.Currency))
	return subcommands.ExitSuccess
}
