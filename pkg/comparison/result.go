package comparison

import (
	"bytes"
	"encoding/json"

	"github.com/artem13815/aicomparator/pkg/llm"
)

// entry pairs a provider with its envelope.
type entry struct {
	Provider llm.ProviderID
	Envelope llm.Envelope
}

// Result holds one envelope per requested provider in invocation order.
type Result struct {
	entries []entry
}

func (r *Result) add(id llm.ProviderID, env llm.Envelope) {
	r.entries = append(r.entries, entry{Provider: id, Envelope: env})
}

// Get returns the envelope of provider id.
func (r Result) Get(id llm.ProviderID) (llm.Envelope, bool) {
	for _, e := range r.entries {
		if e.Provider == id {
			return e.Envelope, true
		}
	}
	return llm.Envelope{}, false
}

// Providers lists result keys in invocation order.
func (r Result) Providers() []llm.ProviderID {
	out := make([]llm.ProviderID, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Provider)
	}
	return out
}

func (r Result) Len() int { return len(r.entries) }

// AllOK reports whether no envelope carries an error.
func (r Result) AllOK() bool {
	for _, e := range r.entries {
		if !e.Envelope.OK() {
			return false
		}
	}
	return true
}

// MarshalJSON renders the result as an object keyed by provider id,
// keeping invocation order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Provider))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Envelope)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
