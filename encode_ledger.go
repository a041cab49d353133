package expenses

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/expenses/date"
	"github.com/rs/zerolog"
)

const (
	currentBalancePrefix = "Current Balance: "
	initialBalancePrefix = "Initial Balance: "
	recordHeader         = "Transactions Record: "
)

// EncodeLedger writes the ledger in the text file format:
//
//	Current Balance: 1,300.00
//	Initial Balance: 1,000.00
//
//	Transactions Record:
//	2024-01-20 E -200.00 groceries
//	2024-01-15 I 500.00 salary
func EncodeLedger(w io.Writer, l *Ledger) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%s\n", currentBalancePrefix, l.current)
	fmt.Fprintf(bw, "%s%s\n", initialBalancePrefix, l.initial)
	fmt.Fprintf(bw, "\n%s\n", recordHeader)
	for _, tx := range l.transactions {
		// The separator before details is written even when they are empty.
		fmt.Fprintf(bw, "%s %s %s %s\n", tx.date, tx.category.Code(), tx.amount, tx.details)
	}
	return bw.Flush()
}

// DecodeOption configures DecodeLedger.
type DecodeOption func(*decoder)

// Repair makes DecodeLedger recompute a current balance that does not match
// the transactions instead of failing. The fix is logged as a warning.
func Repair(log zerolog.Logger) DecodeOption {
	return func(d *decoder) {
		d.repair = true
		d.log = log
	}
}

type decoder struct {
	repair bool
	log    zerolog.Logger
}

// DecodeLedger reads a ledger in the text file format.
//
// Any malformed content is reported as ErrCorruptFile with its line number.
func DecodeLedger(r io.Reader, opts ...DecodeOption) (*Ledger, error) {
	d := decoder{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&d)
	}

	l := NewLedger()
	scanner := bufio.NewScanner(r)
	n := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			n++
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) != "" {
				return line, true
			}
		}
		return "", false
	}

	var err error
	line, _ := next()
	if l.current, err = decodeBalance(line, currentBalancePrefix); err != nil {
		return nil, corrupt(n, err)
	}
	line, _ = next()
	if l.initial, err = decodeBalance(line, initialBalancePrefix); err != nil {
		return nil, corrupt(n, err)
	}
	if l.initial.IsNegative() {
		return nil, corrupt(n, fmt.Errorf("%w: %s", ErrNegativeInitialBalance, l.initial))
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == strings.TrimSpace(recordHeader) {
			continue
		}
		tx, err := decodeTransaction(line)
		if err != nil {
			return nil, corrupt(n, err)
		}
		l.transactions = append(l.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}

	l.stableSort()
	if err := l.VerifyBalance(); err != nil {
		if !d.repair {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFile, err)
		}
		fixed := l.computeBalance()
		d.log.Warn().Str("recorded", l.current.String()).Str("computed", fixed.String()).Msg("repaired current balance")
		l.current = fixed
	}
	return l, nil
}

func corrupt(line int, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrCorruptFile, line, err)
}

func decodeBalance(line, prefix string) (Money, error) {
	value, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return Money{}, fmt.Errorf("want %q, got %q", strings.TrimSpace(prefix), line)
	}
	return ParseAmount(value)
}

// decodeTransaction parses "<date> <I|E> <amount> <details>".
func decodeTransaction(line string) (Transaction, error) {
	day, rest := cutToken(line)
	code, rest := cutToken(rest)
	amount, details := cutToken(rest)
	if amount == "" {
		return Transaction{}, fmt.Errorf("want date, category and amount, got %q", line)
	}
	on, err := date.Parse(day)
	if err != nil {
		return Transaction{}, err
	}
	category, err := parseCode(code)
	if err != nil {
		return Transaction{}, err
	}
	value, err := ParseAmount(amount)
	if err != nil {
		return Transaction{}, err
	}
	return NewTransaction(on, category, value, details)
}

// cutToken splits s around the first run of whitespace after its first token.
func cutToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
