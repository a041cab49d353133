package expenses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// jsonObjectWriter builds a JSON object whose keys keep the order they were
// first written in. Writing a key again replaces its value. Its zero value
// is ready to use; the first error is reported by MarshalJSON.
type jsonObjectWriter struct {
	keys   []string
	values []json.RawMessage
	err    error
}

func (w *jsonObjectWriter) set(key string, value json.RawMessage) {
	if i := slices.Index(w.keys, key); i >= 0 {
		w.values[i] = value
		return
	}
	w.keys = append(w.keys, key)
	w.values = append(w.values, value)
}

// Append adds a key and its json.Marshal'ed value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.set(key, raw)
	return w
}

// Optional is like Append but skips zero values.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed copies the fields of a raw JSON object, in order.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	dec := json.NewDecoder(bytes.NewReader(rawJSON))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		w.err = fmt.Errorf("failed to embed %.20q: not a JSON object", rawJSON)
		return w
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			w.err = fmt.Errorf("failed to embed: %w", err)
			return w
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			w.err = fmt.Errorf("failed to embed key %q: %w", key, err)
			return w
		}
		w.set(key, value)
	}
	return w
}

// EmbedFrom marshals v, which must marshal to a JSON object, and copies its
// fields.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(raw)
}

// MarshalJSON returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(w.values[i])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
