package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/1broseidon/llmsdk/providers/openai"
)

// TransportError reports a call that could not complete: connection, DNS or
// TLS failure, timeout, cancellation, or a body cut short.
type TransportError struct {
	Op        string // "send", "read" or "download"
	URL       string
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call failed because its deadline elapsed.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// DecodeError reports a successful response whose body is not valid JSON or
// does not have the expected shape.
type DecodeError struct {
	Status int
	Body   string // leading part of the body, for diagnostics
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("decoding response: %v", e.Err)
	}
	return fmt.Sprintf("decoding response (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the API. When the body is an OpenAI
// error envelope its fields are copied here; otherwise Message holds the raw
// body.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Param      string
	Message    string
	RequestID  string
	RetryAfter time.Duration
	Category   openai.ErrorCategory
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "openai: status %d", e.StatusCode)
	if e.Type != "" {
		fmt.Fprintf(&b, " %s", e.Type)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	return b.String()
}

// Retryable reports whether the failure is transient (429 or 5xx). The
// client itself never retries.
func (e *APIError) Retryable() bool {
	return e.Category == openai.ErrorTransient
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(openai.RequestIDHeader),
		RetryAfter: openai.ParseRetryAfter(resp.Header),
		Category:   openai.CategorizeStatusCode(resp.StatusCode),
	}

	detail, ok := openai.DecodeErrorResponse(body)
	if !ok {
		apiErr.Message = openai.FallbackMessage(resp.StatusCode, body)
		return apiErr
	}

	apiErr.Type = detail.Type
	apiErr.Message = detail.Message
	if detail.Code != nil {
		apiErr.Code = *detail.Code
	}
	if detail.Param != nil {
		apiErr.Param = *detail.Param
	}
	return apiErr
}

func truncate(body []byte) string {
	return openai.Truncate(string(body), 256)
}
