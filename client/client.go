package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/1broseidon/llmsdk/common"
	"github.com/1broseidon/llmsdk/internal/logging"
	"github.com/1broseidon/llmsdk/models"
	"github.com/1broseidon/llmsdk/providers/openai"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every API call, including reading the response body.
const DefaultTimeout = 30 * time.Second

// Client is an OpenAI API client. It is safe for concurrent use; calls share
// the underlying http.Client and nothing else.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     logging.Logger
}

// NewClient creates a client authenticating with token. An empty token sends
// requests without an Authorization header.
func NewClient(token string, options ...ClientOption) *Client {
	c := &Client{
		token:      token,
		httpClient: &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		baseURL:    openai.DefaultBaseURL,
		timeout:    DefaultTimeout,
		logger:     logging.NewDefaultLogger(),
	}

	// Set default log level to Disabled
	c.logger.SetLevel(common.DisabledLevel)

	for _, option := range options {
		option(c)
	}

	c.logger.Debug("Initializing client", slog.String("base_url", c.baseURL), logging.Secret(c.token))

	return c
}

// CreateImage generates images from req. It fails with *TransportError when
// the call cannot complete, *APIError on a non-2xx status and *DecodeError
// when a 2xx body does not match ImageGenerationResponse.
func (c *Client) CreateImage(ctx context.Context, req *models.ImageGenerationRequest) (*models.ImageGenerationResponse, error) {
	if req == nil {
		return nil, errors.New("nil image generation request")
	}

	var resp models.ImageGenerationResponse
	if err := c.send(ctx, req, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("Generated images", slog.Int("count", len(resp.Images)), slog.Uint64("created", resp.Created))
	return &resp, nil
}

// FetchImage returns the bytes of a generated image, decoding b64_json
// results locally and downloading url results. The download carries no
// Authorization header since image URLs point outside the API host.
func (c *Client) FetchImage(ctx context.Context, image models.ImageResult) ([]byte, error) {
	if data, ok, err := image.Image(); ok {
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		return data, nil
	}
	if image.URL == nil {
		return nil, errors.New("image result has neither url nor b64_json")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *image.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building image download: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "download", URL: *image.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "download", URL: *image.URL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp, body)
	}

	c.logger.Debug("Downloaded image", slog.Int("bytes", len(body)))
	return body, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// send runs one request/response round trip for any endpoint payload.
func (c *Client) send(ctx context.Context, req models.Request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := req.HTTPRequest(ctx, c.baseURL)
	if err != nil {
		c.logger.Error("Failed to build request", logging.Err(err))
		return fmt.Errorf("building request: %w", err)
	}
	requestID := c.prepareRequest(httpReq)

	log := []any{slog.String("request_id", requestID), slog.String("url", httpReq.URL.String())}
	c.logger.Debug("Sending request", log...)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		terr := &TransportError{Op: "send", URL: httpReq.URL.String(), RequestID: requestID, Err: err}
		c.logger.Error("Request failed", append(log, logging.Err(terr))...)
		return terr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{Op: "read", URL: httpReq.URL.String(), RequestID: requestID, Err: err}
		c.logger.Error("Reading response failed", append(log, logging.Err(terr))...)
		return terr
	}

	c.logger.Debug("Received response", append(log,
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("bytes", len(body)),
	)...)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp, body)
		c.logger.Error("API returned an error", append(log, logging.Err(apiErr))...)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		derr := &DecodeError{Status: resp.StatusCode, Body: truncate(body), Err: err}
		c.logger.Error("Failed to decode response", append(log, logging.Err(derr))...)
		return derr
	}

	return nil
}

// prepareRequest attaches auth and a fresh client request id, returning the id.
func (c *Client) prepareRequest(req *http.Request) string {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	id := uuid.NewString()
	req.Header.Set(openai.ClientRequestIDHeader, id)
	return id
}
