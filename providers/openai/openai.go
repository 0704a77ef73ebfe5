package openai

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultBaseURL is the public OpenAI API host.
	DefaultBaseURL = "https://api.openai.com"

	// ClientRequestIDHeader carries a caller-chosen id that OpenAI echoes in its logs.
	ClientRequestIDHeader = "X-Client-Request-Id"

	// RequestIDHeader is the server-assigned id on every response.
	RequestIDHeader = "X-Request-Id"
)

// ErrorCategory classifies an API failure by how a caller might react to it.
type ErrorCategory string

const (
	ErrorTransient ErrorCategory = "transient"
	ErrorPermanent ErrorCategory = "permanent"
	ErrorUserInput ErrorCategory = "user_input"
)

// ErrorResponse is the error envelope OpenAI returns on non-2xx responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the body of an ErrorResponse. Code and Param are often null.
type ErrorDetail struct {
	Message string  `json:"message"`
	Type    string  `json:"type"`
	Param   *string `json:"param,omitempty"`
	Code    *string `json:"code,omitempty"`
}

// DecodeErrorResponse parses an OpenAI error envelope. ok is false when body
// is not one, e.g. an HTML page from a proxy.
func DecodeErrorResponse(body []byte) (detail ErrorDetail, ok bool) {
	var resp struct {
		Error *ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Error == nil {
		return ErrorDetail{}, false
	}
	if resp.Error.Message == "" && resp.Error.Type == "" {
		return ErrorDetail{}, false
	}
	return *resp.Error, true
}

// FallbackMessage describes a non-2xx response whose body is not an error envelope.
func FallbackMessage(status int, body []byte) string {
	msg := string(bytes.TrimSpace(body))
	if msg == "" {
		return http.StatusText(status)
	}
	return Truncate(msg, 512)
}

// Truncate shortens s to at most max bytes plus "...", cutting on a rune
// boundary.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// CategorizeStatusCode determines the error category from an HTTP status code.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == http.StatusTooManyRequests:
		return ErrorTransient
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrorPermanent
	case code == http.StatusBadRequest || code == http.StatusNotFound || code == http.StatusUnprocessableEntity:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// ParseRetryAfter extracts the Retry-After delay from response headers.
// Returns 0 if the header is absent or cannot be parsed.
func ParseRetryAfter(h http.Header) time.Duration {
	header := strings.TrimSpace(h.Get("Retry-After"))
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}
