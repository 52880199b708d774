package catalog

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"nested detail", `{"detail":{"success":false,"error":"Department not found"}}`, "Department not found"},
		{"string detail", `{"detail":"Internal server error"}`, "Internal server error"},
		{"validation detail", `{"detail":[{"loc":["query","page"],"msg":"value is not a valid integer"}]}`, "value is not a valid integer"},
		{"flat error", `{"success":false,"error":"backend degraded"}`, "backend degraded"},
		{"no message", `{"status":"sad"}`, ""},
		{"not json", `<html>`, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := errorMessage([]byte(c.body)); got != c.want {
				t.Errorf("errorMessage(%s) = %q, want %q", c.body, got, c.want)
			}
		})
	}
}

func TestFailedEnvelope(t *testing.T) {
	if _, failed := failedEnvelope([]byte(`{"departments":[]}`)); failed {
		t.Error("body without success flag should not be a failure")
	}
	if _, failed := failedEnvelope([]byte(`{"success":true,"data":{}}`)); failed {
		t.Error("success=true should not be a failure")
	}
	msg, failed := failedEnvelope([]byte(`{"success":false,"error":"boom"}`))
	if !failed || msg != "boom" {
		t.Errorf("failedEnvelope = %q, %v; want boom, true", msg, failed)
	}
	msg, failed = failedEnvelope([]byte(`{"success":false}`))
	if !failed || msg != "request failed" {
		t.Errorf("failedEnvelope without message = %q, %v; want request failed, true", msg, failed)
	}
}

func TestAPIError_Error(t *testing.T) {
	e := &APIError{Kind: KindHTTPStatus, Status: 500, Message: "HTTP 500"}
	if got := e.Error(); got != "HTTP 500 (status 500)" {
		t.Errorf("Error() = %q", got)
	}
	cause := errors.New("dial tcp: refused")
	e = &APIError{Kind: KindNetwork, Message: "catalog backend unreachable", Err: cause}
	if got := e.Error(); got != "catalog backend unreachable: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(e, cause) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestIsNotFound(t *testing.T) {
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error is not a 404")
	}
	if IsNotFound(&APIError{Kind: KindHTTPStatus, Status: 500, Message: "x"}) {
		t.Error("500 is not a 404")
	}
	if !IsNotFound(&APIError{Kind: KindHTTPStatus, Status: 404, Message: "x"}) {
		t.Error("404 APIError: want true")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(&APIError{Kind: KindNetwork, Message: "unreachable", Err: errors.New("dial")}); got != "unreachable" {
		t.Errorf("UserMessage = %q, want unreachable", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage plain = %q, want plain", got)
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindNetwork:    "network",
		KindHTTPStatus: "http_status",
		KindMalformed:  "malformed",
		Kind(0):        "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
