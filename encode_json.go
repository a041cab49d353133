package expenses

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON exports the ledger with its balances, a ratio summary and the
// numbered transactions.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	rows := make([]json.RawMessage, 0, len(l.transactions))
	for i, tx := range l.transactions {
		var row jsonObjectWriter
		row.Append("no", i+1)
		row.EmbedFrom(tx)
		b, err := row.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		rows = append(rows, b)
	}

	var w jsonObjectWriter
	w.Append("currentBalance", l.current)
	w.Append("initialBalance", l.initial)
	w.Append("summary", l.Ratio())
	w.Append("transactions", rows)
	return w.MarshalJSON()
}

// EncodeJSON writes the ledger as indented JSON.
func EncodeJSON(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
