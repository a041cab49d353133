package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/expenses/date"
	"github.com/rs/zerolog"
)

// Session owns a ledger and its file for the duration of a run.
//
// Every mutation is applied to a copy of the ledger which is saved before
// it replaces the session's ledger: when saving fails the session keeps
// the previous state, matching what is on disk.
type Session struct {
	path   string
	ledger *Ledger
	log    zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// WithClock sets the function used to get today's date.
func WithClock(today func() date.Date) SessionOption {
	return func(s *Session) { s.ledger.SetClock(today) }
}

// NewSession returns a session over a ledger stored at path.
func NewSession(path string, l *Ledger, opts ...SessionOption) *Session {
	s := &Session{path: path, ledger: l, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("path", path).Logger()
	return s
}

// OpenSession loads the ledger at path.
func OpenSession(path string, opts ...SessionOption) (*Session, error) {
	l, err := LoadLedger(path)
	if err != nil {
		return nil, err
	}
	s := NewSession(path, l, opts...)
	s.log.Debug().Int("transactions", l.Len()).Str("balance", l.Balance().String()).Msg("ledger loaded")
	return s, nil
}

// CreateSession creates a new ledger file at path with an initial balance.
// It fails if the file already exists.
func CreateSession(path string, initial Money, opts ...SessionOption) (*Session, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("ledger %q: %w", path, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ledger %q: %w", path, err)
	}
	l, err := CreateLedger(initial)
	if err != nil {
		return nil, err
	}
	s := NewSession(path, l, opts...)
	if err := SaveLedger(path, l); err != nil {
		return nil, err
	}
	s.log.Info().Str("balance", initial.String()).Msg("ledger created")
	return s, nil
}

// Path returns the ledger file path.
func (s *Session) Path() string { return s.path }

// Ledger returns a copy of the current ledger for queries.
func (s *Session) Ledger() *Ledger { return s.ledger.Clone() }

// Add validates an entry, adds it and saves the ledger.
func (s *Session) Add(e Entry) (Transaction, error) {
	next := s.ledger.Clone()
	tx, err := next.Add(e)
	if err != nil {
		s.log.Debug().Err(err).Str("op", "add").Msg("rejected")
		return Transaction{}, err
	}
	if err := s.commit(next); err != nil {
		return Transaction{}, err
	}
	s.log.Info().Str("op", "add").
		Str("date", tx.date.String()).
		Str("category", tx.category.String()).
		Str("amount", tx.amount.String()).
		Str("balance", next.current.String()).
		Msg("transaction added")
	return tx, nil
}

// Delete removes the transaction at index i after confirmation, and saves the ledger.
func (s *Session) Delete(i int, confirm Confirm) (Transaction, error) {
	tx, err := s.ledger.At(i)
	if err != nil {
		return Transaction{}, err
	}
	if !confirm.ask(fmt.Sprintf("Delete transaction %d: %s?", i+1, tx)) {
		return Transaction{}, ErrDeleteCancelled
	}
	next := s.ledger.Clone()
	if _, err := next.Delete(i); err != nil {
		return Transaction{}, err
	}
	if err := s.commit(next); err != nil {
		return Transaction{}, err
	}
	s.log.Info().Str("op", "delete").Int("index", i+1).
		Str("amount", tx.amount.String()).
		Str("balance", next.current.String()).
		Msg("transaction deleted")
	return tx, nil
}

// Update changes one field of the transaction at index i and saves the ledger.
// Cancelled and rejected updates change nothing.
func (s *Session) Update(i int, field Field, value string, confirm Confirm) (UpdateResult, error) {
	next := s.ledger.Clone()
	res, err := next.Update(i, field, value, confirm)
	if err != nil {
		s.log.Debug().Err(err).Str("op", "update").Int("index", i+1).Stringer("field", field).Stringer("state", res.State).Msg("not updated")
		return res, err
	}
	if err := s.commit(next); err != nil {
		res.State = Rejected
		return res, err
	}
	s.log.Info().Str("op", "update").Int("index", i+1).Stringer("field", field).
		Str("delta", res.Delta.SignedString()).
		Str("balance", next.current.String()).
		Msg("transaction updated")
	return res, nil
}

func (s *Session) commit(next *Ledger) error {
	if err := SaveLedger(s.path, next); err != nil {
		s.log.Error().Err(err).Msg("could not save ledger")
		return err
	}
	s.ledger = next
	return nil
}
