package date

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range starts after it ends.
var ErrInvalidRange = errors.New("invalid date range")

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns a validated range from..to.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, from, to)
	}
	return Range{From: from, To: to}, nil
}

// PeriodRange returns the standard period containing d.
func PeriodRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Identifier computes a short identifier for a range of the given period.
func (r Range) Identifier(p Period) string {
	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
