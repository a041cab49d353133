package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	ledgerFlag
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current and initial balance" }
func (*balanceCmd) Usage() string {
	return `xps balance

  Shows the current balance, the initial balance and the overall income to
  expense ratio.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) { c.setLedgerFlag(f) }

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	l, err := e.load()
	if err != nil {
		return failure(err)
	}
	e.printMarkdown(renderer.Balance(l, e.cfg.Currency))
	return subcommands.ExitSuccess
}
