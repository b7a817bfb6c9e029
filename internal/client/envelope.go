package client

import (
	"encoding/json"
)

// unwrapEnvelope extracts the payload from API responses of the form
// {"data": ...}. Responses without the envelope are returned unchanged, so
// the client works against both wrapped and bare payloads.
func unwrapEnvelope(body []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}
