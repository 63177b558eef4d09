package client

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	GenericUpstreamMessage = "An error occurred with the NASA API."
	UnknownMessage         = "An unknown error occurred."
)

// UpstreamError is a transport level failure: no response at all, or a non-2xx status.
// StatusCode is 0 when the request never got a response.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// UnknownError wraps anything that is not an HTTP failure, e.g. a body that does not decode.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return UnknownMessage
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

func newUpstreamError(status int, body []byte) *UpstreamError {
	return &UpstreamError{
		StatusCode: status,
		Message:    messageFromBody(body),
		Body:       body,
	}
}

// upstream uses three error shapes:
// {"message": "..."}, {"code": 400, "msg": "..."} and {"error": {"code": "...", "message": "..."}}
func messageFromBody(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Msg     string          `json:"msg"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return GenericUpstreamMessage
	}

	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	if m := strings.TrimSpace(payload.Msg); m != "" {
		return m
	}

	var nested struct {
		Message string `json:"message"`
	}
	if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &nested) == nil {
		if m := strings.TrimSpace(nested.Message); m != "" {
			return m
		}
	}

	return GenericUpstreamMessage
}

// Message turns any error returned by the client into the text shown to users.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Message
	}

	return UnknownMessage
}

// StatusCode returns the upstream HTTP status carried by err, 0 when there is none.
func StatusCode(err error) int {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode
	}
	return 0
}
