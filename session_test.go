package expenses

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestSession(t *testing.T, initial string, opts ...SessionOption) *Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.txt")
	opts = append([]SessionOption{WithClock(fixedClock)}, opts...)
	s, err := CreateSession(path, MustParseAmount(initial), opts...)
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	return s
}

// reload reads the session's file back from disk.
func reload(t *testing.T, s *Session) *Ledger {
	t.Helper()
	l, err := LoadLedger(s.Path())
	if err != nil {
		t.Fatalf("LoadLedger() unexpected error: %v", err)
	}
	return l
}

func TestCreateSession(t *testing.T) {
	s := newTestSession(t, "1000")
	assertBalance(t, reload(t, s), "1,000.00")

	if _, err := CreateSession(s.Path(), M(5)); !errors.Is(err, fs.ErrExist) {
		t.Errorf("CreateSession(existing) error = %v, want %v", err, fs.ErrExist)
	}
	path := filepath.Join(t.TempDir(), "negative.txt")
	if _, err := CreateSession(path, M(-5)); !errors.Is(err, ErrNegativeInitialBalance) {
		t.Errorf("CreateSession(-5) error = %v, want %v", err, ErrNegativeInitialBalance)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("rejected CreateSession wrote %s", path)
	}
}

func TestSession_AddPersists(t *testing.T) {
	var logs bytes.Buffer
	s := newTestSession(t, "1000", WithLogger(zerolog.New(&logs)))

	if _, err := s.Add(income("2024-01-05", "500", "salary")); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	assertBalance(t, reload(t, s), "1,500.00")

	if _, err := s.Add(expense("2024-01-06", "5000", "car")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Add(car) error = %v, want %v", err, ErrInsufficientFunds)
	}
	if got := reload(t, s); got.Len() != 1 {
		t.Errorf("rejected Add was persisted: %d transactions, want 1", got.Len())
	}
	if !strings.Contains(logs.String(), "transaction added") {
		t.Errorf("Add was not logged: %q", logs.String())
	}
}

func TestSession_Delete(t *testing.T) {
	s := newTestSession(t, "1000")
	if _, err := s.Add(expense("2024-01-06", "200", "groceries")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Delete(0, nil); !errors.Is(err, ErrDeleteCancelled) {
		t.Errorf("Delete(no confirmation) error = %v, want %v", err, ErrDeleteCancelled)
	}
	if got := reload(t, s); got.Len() != 1 {
		t.Errorf("cancelled Delete was persisted")
	}

	if _, err := s.Delete(3, Yes); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete(3) error = %v, want %v", err, ErrIndexOutOfRange)
	}

	var asked string
	tx, err := s.Delete(0, func(prompt string) bool { asked = prompt; return true })
	if err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if !strings.Contains(asked, "groceries") {
		t.Errorf("confirmation %q does not describe the transaction", asked)
	}
	if tx.Details() != "groceries" {
		t.Errorf("Delete() = %v, want groceries", tx)
	}
	got := reload(t, s)
	if got.Len() != 0 {
		t.Errorf("Delete was not persisted")
	}
	assertBalance(t, got, "1,000.00")
}

func TestSession_UpdateCancelledIsNotPersisted(t *testing.T) {
	s := newTestSession(t, "1000")
	if _, err := s.Add(expense("2024-01-06", "50", "lunch")); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(s.Path())

	res, err := s.Update(0, FieldAmount, "80", nil)
	if !errors.Is(err, ErrUpdateCancelled) || res.State != Cancelled {
		t.Fatalf("Update() = %v, %v; want %v, %v", res.State, err, Cancelled, ErrUpdateCancelled)
	}
	after, _ := os.ReadFile(s.Path())
	if string(before) != string(after) {
		t.Errorf("cancelled update changed the file")
	}

	if _, err := s.Update(0, FieldCategory, "I", nil); err != nil {
		t.Fatalf("Update(category) unexpected error: %v", err)
	}
	assertBalance(t, reload(t, s), "1,050.00")
	assertBalance(t, s.Ledger(), "1,050.00")
}

func TestSession_SaveFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	l := newTestLedger(t, "100")
	// The parent of the ledger path is a regular file: every save fails.
	s := NewSession(filepath.Join(file, "ledger.txt"), l)

	if _, err := s.Add(income("2024-01-05", "5", "")); err == nil {
		t.Fatalf("Add() succeeded, want a save error")
	}
	if got := s.Ledger(); got.Len() != 0 {
		t.Errorf("failed save changed the session: %d transactions, want 0", got.Len())
	}
	assertBalance(t, s.Ledger(), "100.00")
}

func TestSession_LedgerIsACopy(t *testing.T) {
	s := newTestSession(t, "1000")
	l := s.Ledger()
	if _, err := l.Add(income("2024-01-05", "5", "")); err != nil {
		t.Fatal(err)
	}
	if s.Ledger().Len() != 0 {
		t.Errorf("changing Ledger() changed the session")
	}
}

func TestOpenSession(t *testing.T) {
	s := newTestSession(t, "1000")
	if _, err := s.Add(income("2024-01-05", "500", "salary")); err != nil {
		t.Fatal(err)
	}
	opened, err := OpenSession(s.Path(), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("OpenSession() unexpected error: %v", err)
	}
	assertBalance(t, opened.Ledger(), "1,500.00")

	if _, err := OpenSession(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("OpenSession(missing) error = %v, want %v", err, ErrFileNotFound)
	}
}
