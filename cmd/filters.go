package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
)

// filterFlags are the entry selection flags shared by the reports.
type filterFlags struct {
	day, month, year int
	yearSet          bool
	from, to         string
	category         string
}

func (p *filterFlags) setFilterFlags(f *flag.FlagSet) {
	f.IntVar(&p.day, "day", 0, "Keep entries of this day of the month (1-31).")
	f.IntVar(&p.month, "month", 0, "Keep entries of this month (1-12).")
	f.IntVar(&p.year, "year", 0, "Keep entries of this year.")
	f.StringVar(&p.from, "from", "", "Keep entries on or after this date (YYYY-MM-DD). Requires -to.")
	f.StringVar(&p.to, "to", "", "Keep entries on or before this date (YYYY-MM-DD). Requires -from.")
	f.StringVar(&p.category, "c", "", "Keep incomes (I) or expenses (E).")
}

// isSet reports whether a flag named name was given on the command line.
func isSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// filters builds the filters given on the command line. All of them must match.
func (p *filterFlags) filters(f *flag.FlagSet) ([]expenses.Filter, error) {
	var filters []expenses.Filter
	add := func(filter expenses.Filter, err error) error {
		if err != nil {
			return err
		}
		filters = append(filters, filter)
		return nil
	}

	if isSet(f, "day") {
		if err := add(expenses.ByDay(p.day)); err != nil {
			return nil, err
		}
	}
	if isSet(f, "month") {
		if err := add(expenses.ByMonth(p.month)); err != nil {
			return nil, err
		}
	}
	if p.yearSet = isSet(f, "year"); p.yearSet {
		if err := add(expenses.ByYear(p.year)); err != nil {
			return nil, err
		}
	}
	if p.from != "" || p.to != "" {
		if p.from == "" || p.to == "" {
			return nil, errors.New("-from and -to must be used together")
		}
		start, err := date.Parse(p.from)
		if err != nil {
			return nil, fmt.Errorf("%w: -from %q", expenses.ErrInvalidDate, p.from)
		}
		end, err := date.Parse(p.to)
		if err != nil {
			return nil, fmt.Errorf("%w: -to %q", expenses.ErrInvalidDate, p.to)
		}
		if err := add(expenses.ByDateRange(start, end)); err != nil {
			return nil, err
		}
	}
	if p.category != "" {
		c, err := expenses.ParseCategory(p.category)
		if err != nil {
			return nil, err
		}
		if err := add(expenses.ByCategory(c)); err != nil {
			return nil, err
		}
	}
	return filters, nil
}

// title describes the selection, "" when everything is selected.
func (p *filterFlags) title() string {
	var s string
	if p.category != "" {
		if c, err := expenses.ParseCategory(p.category); err == nil {
			s += " " + c.String()
		}
	}
	switch {
	case p.from != "" && p.to != "":
		s += fmt.Sprintf(" from %s to %s", p.from, p.to)
	default:
		if p.yearSet {
			s += fmt.Sprintf(" in %d", p.year)
		}
		if p.month > 0 {
			s += fmt.Sprintf(" month %d", p.month)
		}
		if p.day > 0 {
			s += fmt.Sprintf(" day %d", p.day)
		}
	}
	return s
}
