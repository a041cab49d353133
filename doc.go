// Package expenses implements a personal expense ledger.
//
// A Ledger records income and expense entries and keeps a running balance
// that always equals the initial balance plus the sum of all entries. The
// package provides:
//   - Validation of raw user input into normalized transactions (Validate, Check).
//   - Ledger mutations: Add, Delete and Update, each validated before being applied.
//   - Read only queries: filters by day, month, year, date range and category,
//     and the income to expense ratio.
//   - Persistence to a human readable text file (EncodeLedger, DecodeLedger,
//     LoadLedger, SaveLedger) and an ordered JSON export.
//   - A Session that owns a ledger for the duration of a run and persists it
//     after every successful mutation.
//
// This package serves as the foundational logic for the `xps` command-line
// tool.
package expenses
