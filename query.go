package expenses

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression, like "$.transactions[?(@.amount < 0)].details",
// against the JSON export of the ledger.
func (l *Ledger) Query(path string) (any, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("could not export ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not export ledger: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	return v, nil
}
