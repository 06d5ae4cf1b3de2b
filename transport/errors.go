package transport

import (
	"encoding/json"
	"fmt"
)

// HTTPError is a response with a non-2xx status. Status and the raw body are
// carried intact so the caller decides how to surface them.
type HTTPError struct {
	Status    int
	Body      []byte
	RequestID string
}

func (e *HTTPError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("transport: status %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("transport: status %d", e.Status)
}

// Message extracts the backend's error text when the body is the
// conventional {"error": "..."} or {"message": "..."} JSON shape. Empty
// when the body is anything else.
func (e *HTTPError) Message() string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

// NetworkError is a transport-level failure: no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("transport: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
