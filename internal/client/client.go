// Package client is the typed REST client the console uses to talk to the
// leave API. All operations take context and explicit identifiers; nothing
// is read from ambient state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const genericErrorMessage = "an unknown error occurred"

// RequestError wraps a transport failure or a non-2xx response. Message is
// the server-reported msg/error text when present.
type RequestError struct {
	Message string
	Status  int
}

func (e *RequestError) Error() string {
	return e.Message
}

// NotFoundError indicates an update or delete whose target no longer exists
// server-side. The UI surfaces it exactly like a RequestError.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client

	// now is the clock used by upcoming-leave filtering; tests override it.
	now func() time.Time
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeFailure(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Message: err.Error(), Status: resp.StatusCode}
	}
	return nil
}

// normalizeFailure turns an error response into a single-message failure,
// preferring the server's msg/error field over a generic fallback.
func (c *Client) normalizeFailure(resp *http.Response) error {
	if resp.StatusCode == http.StatusForbidden {
		return &RequestError{
			Message: "session expired or unauthorized access, please log in again",
			Status:  resp.StatusCode,
		}
	}

	message := genericErrorMessage
	var failure struct {
		Msg   string `json:"msg"`
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &failure) == nil {
		if failure.Msg != "" {
			message = failure.Msg
		} else if failure.Error != "" {
			message = failure.Error
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Message: message}
	}
	return &RequestError{Message: message, Status: resp.StatusCode}
}
