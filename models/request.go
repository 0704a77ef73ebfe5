package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request is implemented by every endpoint payload. It turns the payload into
// a ready-to-send HTTP request against baseURL; the client adds auth and
// timeout on top.
type Request interface {
	HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error)
}

func newJSONRequest(ctx context.Context, method, baseURL, path string, payload any) (*http.Request, error) {
	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
