package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TickerEnvelope is the raw Kraken response for one pair.
// A non-empty Error list marks the fetch as failed even when Result is present.
type TickerEnvelope struct {
	Error  []string     `json:"error"`
	Result *PairResults `json:"result"`
}

// HasResult reports whether the envelope carried a result mapping at all.
func (e *TickerEnvelope) HasResult() bool {
	return e != nil && e.Result != nil
}

// First returns the first pair value in upstream document order.
func (e *TickerEnvelope) First() (TickerResult, bool) {
	if !e.HasResult() || len(*e.Result) == 0 {
		return TickerResult{}, false
	}
	return (*e.Result)[0].Value, true
}

// PairResult is one entry of the result mapping.
type PairResult struct {
	Key   string
	Value TickerResult
}

// PairResults keeps the result mapping in document order, so "first entry" is stable
// across decodes (a Go map would randomize it).
type PairResults []PairResult

func (p *PairResults) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("result: expected object, got %v", tok)
	}

	out := make(PairResults, 0, 1)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("result: unexpected key %v", keyTok)
		}
		var v TickerResult
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("result %s: %w", key, err)
		}
		out = append(out, PairResult{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalJSON writes the entries back as an object, preserving order.
func (p PairResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(r.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TickerResult is either a structured trade snapshot or a bare string; Kraken sends
// both shapes under "result" depending on the pair.
type TickerResult struct {
	Record *TickerRecord
	Text   string
}

// IsRecord reports whether the value decoded as a structured record.
func (r TickerResult) IsRecord() bool { return r.Record != nil }

func (r *TickerResult) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return fmt.Errorf("ticker value: null")
	}
	var rec TickerRecord
	recErr := json.Unmarshal(b, &rec)
	if recErr == nil && bytes.HasPrefix(bytes.TrimSpace(b), []byte("{")) {
		*r = TickerResult{Record: &rec}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = TickerResult{Text: s}
		return nil
	}
	if recErr != nil {
		return fmt.Errorf("ticker value: %w", recErr)
	}
	return fmt.Errorf("ticker value: unsupported shape %s", truncate(b, 32))
}

func (r TickerResult) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	return json.Marshal(r.Text)
}

// TickerRecord is the trade snapshot for one pair. Only LastTradeClose[0] is used
// for pricing; the other levels are kept for completeness.
type TickerRecord struct {
	Ask            []string `json:"a"`
	Bid            []string `json:"b"`
	LastTradeClose []string `json:"c"`
	Volume         []string `json:"v"`
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
