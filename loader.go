package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// filenameLayout names new ledger files after their creation time.
const filenameLayout = "transactions_2006-01-02_15-04-05.txt"

// GenerateFilename returns the default file name for a ledger created at now.
func GenerateFilename(now time.Time) string { return now.Format(filenameLayout) }

// LoadLedger opens and decodes a ledger file.
//
// A missing file is reported as ErrFileNotFound, never as an empty ledger.
func LoadLedger(path string, opts ...DecodeOption) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q: %w", ErrFileNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the ledger to path.
//
// The content is written to a temporary file in the same directory which
// then replaces path, so a failed save leaves the previous file intact.
func SaveLedger(path string, l *Ledger) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error opening temporary file for ledger %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeLedger(tmp, l); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger %q: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing ledger %q: %w", path, err)
	}
	return nil
}
