// Package transport carries failures of outbound HTTP calls in one shape and
// turns them into the single message shown to dashboard users.
package transport

import (
	"errors"
	"fmt"
)

// NoResponseMessage is reported when a request was sent but nothing came back.
const NoResponseMessage = "No server response. Please check your internet connection."

// Request describes a request that was sent.
type Request struct {
	Method string
	URL    string
}

// Response describes an error reply from the server. Data is the decoded
// JSON body, nil when the body was empty or not JSON.
type Response struct {
	Status int
	Data   map[string]any
}

// Error is an outbound call failure. Response is set when the server replied
// with an error status; Request is set once the request was sent.
type Error struct {
	Request  *Request
	Response *Response
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Response != nil && e.Request != nil:
		return fmt.Sprintf("%s %s: status %d", e.Request.Method, e.Request.URL, e.Response.Status)
	case e.Response != nil:
		return fmt.Sprintf("status %d", e.Response.Status)
	case e.Request != nil && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Request.Method, e.Request.URL, e.Err)
	case e.Request != nil:
		return fmt.Sprintf("%s %s: no response", e.Request.Method, e.Request.URL)
	case e.Err != nil:
		return e.Err.Error()
	}
	return "transport error"
}

func (e *Error) Unwrap() error { return e.Err }

// NormalizedError is the user-facing form of a failure. Its message is the
// whole of Error(); the original failure stays reachable through Unwrap.
type NormalizedError struct {
	Message string
	Cause   error
}

func (e *NormalizedError) Error() string { return e.Message }

func (e *NormalizedError) Unwrap() error { return e.Cause }

// Normalize always returns a non-nil error whose message is, in order:
//
//	the server's message    response with data.message (or data.error)
//	fallback                response without a usable message
//	NoResponseMessage       request sent, no response
//	fallback                anything else, including plain errors
func Normalize(err error, fallback string) error {
	return &NormalizedError{Message: message(err, fallback), Cause: err}
}

func message(err error, fallback string) string {
	var te *Error
	if !errors.As(err, &te) {
		return fallback
	}
	if te.Response != nil {
		if msg, ok := serverMessage(te.Response.Data); ok {
			return msg
		}
		return fallback
	}
	if te.Request != nil {
		return NoResponseMessage
	}
	return fallback
}

func serverMessage(data map[string]any) (string, bool) {
	for _, field := range []string{"message", "error"} {
		if msg, ok := data[field].(string); ok && msg != "" {
			return msg, true
		}
	}
	return "", false
}
