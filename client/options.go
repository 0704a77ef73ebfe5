package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/1broseidon/llmsdk/common"
	"github.com/1broseidon/llmsdk/internal/logging"
)

// ClientOption is a function type for configuring the Client.
// It allows for flexible and extensible client configuration.
type ClientOption func(*Client)

// WithBaseURL points the client at another host, such as a proxy or a test
// server. The endpoint path is appended to it.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the transport handle. The client's own timeout
// still applies to every call.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for the client.
// The provided logger will be used for all logging operations within the client.
func WithLogger(logger logging.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLogLevel sets the log level for the client.
// Apply it after WithLogger, otherwise the replaced logger keeps its own level.
func WithLogLevel(level common.LogLevel) ClientOption {
	return func(c *Client) {
		c.logger.SetLevel(level)
	}
}
