package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a client failure.
type Kind int

const (
	// KindNetwork covers transport failures: connection refused, DNS, timeout.
	KindNetwork Kind = iota + 1
	// KindHTTPStatus covers non-2xx responses and success=false envelopes.
	KindHTTPStatus
	// KindMalformed covers bodies that fail to decode or lack expected fields.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// APIError is the single failure type surfaced by this package. Both backend
// error flavors are folded into Message before the error leaves the client.
type APIError struct {
	Kind    Kind
	Status  int // HTTP status when known, else 0
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an APIError for a 404 response.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// UserMessage returns the banner-ready message for any error coming out of
// this package.
func UserMessage(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

func malformed(what string, err error) *APIError {
	return &APIError{Kind: KindMalformed, Message: "unexpected " + what + " payload", Err: err}
}

// errorMessage extracts the human-readable message from either backend error
// flavor:
//
//	{"detail": {"success": false, "error": "..."}}
//	{"detail": "..."}
//	{"detail": [{"msg": "..."}]}
//	{"success": false, "error": "..."}
//
// Returns "" when the body carries none.
func errorMessage(body []byte) string {
	var eb struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Detail) > 0 {
		var nested struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(eb.Detail, &nested); err == nil && nested.Error != "" {
			return nested.Error
		}
		var plain string
		if err := json.Unmarshal(eb.Detail, &plain); err == nil {
			return plain
		}
		var validation []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(eb.Detail, &validation); err == nil && len(validation) > 0 {
			return validation[0].Msg
		}
	}
	return eb.Error
}

// failedEnvelope detects the deployment flavor that flags failures inside a
// 2xx body as {"success": false, "error": "..."}.
func failedEnvelope(body []byte) (string, bool) {
	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}
	if env.Success == nil || *env.Success {
		return "", false
	}
	msg := env.Error
	if msg == "" {
		msg = "request failed"
	}
	return msg, true
}
