package llm

import "time"

// Envelope is the normalized reply of a single provider call.
// A non-empty Error marks failure; Response then holds a placeholder.
type Envelope struct {
	Model     string `json:"model"`
	Response  string `json:"response,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// OK reports whether the call succeeded.
func (e Envelope) OK() bool { return e.Error == "" }

func notConfigured(model string) Envelope {
	return Envelope{
		Model:    model,
		Response: "API key not configured",
		Error:    ErrNotConfigured.Error(),
	}
}

func failed(model string, err error) Envelope {
	return Envelope{
		Model:    model,
		Response: "Failed to get response from " + model,
		Error:    err.Error(),
	}
}

func succeeded(model, text string, at time.Time) Envelope {
	return Envelope{
		Model:     model,
		Response:  text,
		Timestamp: at.Format(time.RFC3339Nano),
	}
}
