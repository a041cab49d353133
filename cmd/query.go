package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type queryCmd struct {
	ledgerFlag
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger" }
func (*queryCmd) Usage() string {
	return `xps query <jsonpath>

  Evaluates a JSONPath expression against the JSON export of the ledger and
  prints the result as JSON.

Usage Examples:
$ xps query '$.currentBalance'
$ xps query '$.transactions[?(@.category == "Expense")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) { c.setLedgerFlag(f) }

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: query takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	e, err := setup(c.ledgerFile)
	if err != nil {
		return failure(err)
	}
	l, err := e.load()
	if err != nil {
		return failure(err)
	}
	v, err := l.Query(f.Arg(0))
	if err != nil {
		return failure(err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return failure(err)
	}
	fmt.Fprintln(stdout, string(data))
	return subcommands.ExitSuccess
}
