package cmd

import (
	"flag"

	"github.com/etnz/expenses/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of the flags shared by several commands.
var flagPredictors = map[string]complete.Predictor{
	"l":      predict.Files("*.txt"),
	"config": predict.Files("*.yaml"),
	"c":      predict.Set{"I", "E"},
	"f":      predict.Set{"date", "category", "amount", "details"},
	"p":      predict.Set{"day", "week", "month", "quarter", "year"},
	"from":   predict.Something,
	"to":     predict.Something,
}

// Completion describes the xps command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: predictFlags(f)}
		if c.Name() == "topic" {
			sub.Args = predict.Set(topics())
		}
		root.Sub[c.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if isBool(fl) {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func topics() []string {
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(all, "*")
}
