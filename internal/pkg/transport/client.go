package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10
)

// Client wraps an http.Client so that every failed call returns *Error.
type Client struct {
	http *http.Client
}

// NewClient returns a Client over hc, or over a client with a ten second
// timeout when hc is nil.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{http: hc}
}

// Do sends req. Network failures yield an *Error carrying only Request;
// replies with status >= 400 yield an *Error carrying Response, and their
// body is consumed and closed. On success the caller owns resp.Body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	sent := &Request{Method: req.Method, URL: req.URL.Redacted()}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Request: sent, Err: err}
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}
	defer resp.Body.Close()

	return nil, &Error{
		Request:  sent,
		Response: &Response{Status: resp.StatusCode, Data: decodeBody(resp.Body)},
		Err:      errors.New(http.StatusText(resp.StatusCode)),
	}
}

func decodeBody(body io.Reader) map[string]any {
	var data map[string]any
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&data); err != nil {
		return nil
	}
	return data
}
