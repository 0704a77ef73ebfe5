package models

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ImageGenerationsPath is the endpoint path for image generation.
const ImageGenerationsPath = "/v1/images/generations"

// ImageGenerationRequest represents the input for an image generation request.
// Optional fields are pointers: a nil field is left out of the request body,
// a non-nil one is always sent, even when it holds the first variant.
type ImageGenerationRequest struct {
	// Prompt describes the desired image. The API caps it at 4000 characters
	// for dall-e-3; the limit is not checked locally.
	Prompt string     `json:"prompt"`
	Model  ImageModel `json:"model"`
	// Count is the number of images, 1 to 10. dall-e-3 only accepts 1.
	Count          *int                 `json:"n,omitempty"`
	Quality        *ImageQuality        `json:"quality,omitempty"`
	ResponseFormat *ImageResponseFormat `json:"response_format,omitempty"`
	Size           *ImageSize           `json:"size,omitempty"`
	Style          *ImageStyle          `json:"style,omitempty"`
	// User identifies the end-user to OpenAI for abuse monitoring.
	User *string `json:"user,omitempty"`
}

// NewImageGenerationRequest creates a request for prompt with the default
// model. Without options every optional field is unset.
func NewImageGenerationRequest(prompt string, opts ...ImageOption) *ImageGenerationRequest {
	req := &ImageGenerationRequest{
		Prompt: prompt,
		Model:  ImageModelDallE3,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// HTTPRequest builds a POST to <baseURL>/v1/images/generations with the
// request encoded as JSON.
func (r *ImageGenerationRequest) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	return newJSONRequest(ctx, http.MethodPost, baseURL, ImageGenerationsPath, r)
}

// ImageGenerationResponse represents the response from an image generation request.
type ImageGenerationResponse struct {
	Created uint64        `json:"created"`
	Images  []ImageResult `json:"data"`
}

// ImageResult is a single generated image. Exactly one of B64JSON and URL is
// set, depending on the requested response format.
type ImageResult struct {
	B64JSON *string `json:"b64_json,omitempty"`
	URL     *string `json:"url,omitempty"`
	// RevisedPrompt is the prompt dall-e-3 actually used after rewriting.
	RevisedPrompt string `json:"revised_prompt"`
}

// UnmarshalJSON rejects bodies without "created" or "data".
func (r *ImageGenerationResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Created *uint64        `json:"created"`
		Images  *[]ImageResult `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Created == nil {
		return missingField("created")
	}
	if raw.Images == nil {
		return missingField("data")
	}
	r.Created = *raw.Created
	r.Images = *raw.Images
	return nil
}

// UnmarshalJSON rejects results without "revised_prompt".
func (r *ImageResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		B64JSON       *string `json:"b64_json"`
		URL           *string `json:"url"`
		RevisedPrompt *string `json:"revised_prompt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.RevisedPrompt == nil {
		return missingField("revised_prompt")
	}
	r.B64JSON = raw.B64JSON
	r.URL = raw.URL
	r.RevisedPrompt = *raw.RevisedPrompt
	return nil
}

// ErrMissingField is wrapped by decode failures caused by an absent required key.
var ErrMissingField = errors.New("missing field")

func missingField(name string) error {
	return fmt.Errorf("%w %q", ErrMissingField, name)
}

// Image decodes an inline base64 result. ok is false when the result carries
// a URL instead.
func (r ImageResult) Image() (data []byte, ok bool, err error) {
	if r.B64JSON == nil {
		return nil, false, nil
	}
	data, err = base64.StdEncoding.DecodeString(*r.B64JSON)
	if err != nil {
		return nil, true, fmt.Errorf("decoding b64_json: %w", err)
	}
	return data, true, nil
}
