package models

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRequestSerialize(t *testing.T) {
	req := NewImageGenerationRequest("draw a cute caterpillar")

	got, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{"prompt":"draw a cute caterpillar","model":"dall-e-3"}`, string(got))
}

func TestImageCustomRequestSerialize(t *testing.T) {
	req := NewImageGenerationRequest("draw a cute caterpillar",
		WithImageQuality(ImageQualityHD),
		WithImageStyle(ImageStyleNatural),
	)

	got, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{"prompt":"draw a cute caterpillar","model":"dall-e-3","quality":"hd","style":"natural"}`, string(got))
}

func TestImageRequestStructLiteral(t *testing.T) {
	quality := ImageQualityHD
	req := ImageGenerationRequest{Prompt: "a lighthouse", Quality: &quality}

	got, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prompt":"a lighthouse","model":"dall-e-3","quality":"hd"}`, string(got))
}

func TestImageRequestOnlyPromptHasTwoKeys(t *testing.T) {
	prompts := []string{"", "a", "draw a cute caterpillar", `quotes " and \ slashes`, "日本語"}

	for _, p := range prompts {
		got, err := json.Marshal(NewImageGenerationRequest(p))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(got, &fields))
		assert.Len(t, fields, 2)
		assert.Equal(t, p, fields["prompt"])
		assert.Equal(t, "dall-e-3", fields["model"])
	}
}

func TestImageRequestAllFieldsSet(t *testing.T) {
	req := NewImageGenerationRequest("a fox",
		WithImageCount(1),
		WithImageQuality(ImageQualityStandard),
		WithImageResponseFormat(ImageResponseFormatB64JSON),
		WithImageSize(ImageSizeLargeTall),
		WithImageStyle(ImageStyleVivid),
		WithImageUser("user-1234"),
	)

	got, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t,
		`{"prompt":"a fox","model":"dall-e-3","n":1,"quality":"standard","response_format":"b64_json","size":"1024x1792","style":"vivid","user":"user-1234"}`,
		string(got))
}

// A field set to its first variant is distinct from an unset field.
func TestImageRequestUnsetVersusDefaultVariant(t *testing.T) {
	tests := []struct {
		name string
		opt  ImageOption
		key  string
		want any
	}{
		{"count zero", WithImageCount(0), "n", float64(0)},
		{"quality standard", WithImageQuality(ImageQualityStandard), "quality", "standard"},
		{"format url", WithImageResponseFormat(ImageResponseFormatURL), "response_format", "url"},
		{"size large", WithImageSize(ImageSizeLarge), "size", "1024x1024"},
		{"style vivid", WithImageStyle(ImageStyleVivid), "style", "vivid"},
		{"empty user", WithImageUser(""), "user", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unset, err := json.Marshal(NewImageGenerationRequest("p"))
			require.NoError(t, err)
			assert.NotContains(t, string(unset), `"`+tt.key+`"`)
			assert.NotContains(t, string(unset), "null")

			set, err := json.Marshal(NewImageGenerationRequest("p", tt.opt))
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(set, &fields))
			assert.Equal(t, tt.want, fields[tt.key])
		})
	}
}

func TestEnumWireNames(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{ImageModelDallE3, "dall-e-3"},
		{ImageQualityStandard, "standard"},
		{ImageQualityHD, "hd"},
		{ImageResponseFormatURL, "url"},
		{ImageResponseFormatB64JSON, "b64_json"},
		{ImageSizeLarge, "1024x1024"},
		{ImageSizeLargeWide, "1792x1024"},
		{ImageSizeLargeTall, "1024x1792"},
		{ImageStyleVivid, "vivid"},
		{ImageStyleNatural, "natural"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.want+`"`, string(got))
		})
	}
}

func TestEnumOutOfRangeIsRejected(t *testing.T) {
	req := NewImageGenerationRequest("p", WithImageSize(ImageSize(7)))

	_, err := json.Marshal(req)
	assert.ErrorContains(t, err, "invalid ImageSize(7)")

	_, err = req.HTTPRequest(context.Background(), "https://api.openai.com")
	assert.Error(t, err)
}

func TestParseEnums(t *testing.T) {
	q, err := ParseImageQuality("hd")
	require.NoError(t, err)
	assert.Equal(t, ImageQualityHD, q)

	f, err := ParseImageResponseFormat("b64_json")
	require.NoError(t, err)
	assert.Equal(t, ImageResponseFormatB64JSON, f)

	s, err := ParseImageSize("1792x1024")
	require.NoError(t, err)
	assert.Equal(t, ImageSizeLargeWide, s)

	st, err := ParseImageStyle("natural")
	require.NoError(t, err)
	assert.Equal(t, ImageStyleNatural, st)

	_, err = ParseImageStyle("Natural")
	assert.ErrorContains(t, err, `unknown ImageStyle "Natural"`)

	var m ImageModel
	assert.Error(t, m.UnmarshalText([]byte("dall-e-2")))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []string{"1024x1024", "1792x1024", "1024x1792"},
		Values(ImageSizeLarge, ImageSizeLargeWide, ImageSizeLargeTall))
	assert.Equal(t, "ImageStyle(9)", ImageStyle(9).String())
}

func TestImageRequestHTTPRequest(t *testing.T) {
	req := NewImageGenerationRequest("draw a cute caterpillar", WithImageStyle(ImageStyleNatural))

	httpReq, err := req.HTTPRequest(context.Background(), "https://api.openai.com")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, httpReq.Method)
	assert.Equal(t, "https://api.openai.com/v1/images/generations", httpReq.URL.String())
	assert.Equal(t, "application/json", httpReq.Header.Get("Content-Type"))
	assert.Empty(t, httpReq.Header.Get("Authorization"))

	body, err := io.ReadAll(httpReq.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"prompt":"draw a cute caterpillar","model":"dall-e-3","style":"natural"}`, string(body))
}

func TestImageRequestHTTPRequestBaseURLWithPath(t *testing.T) {
	httpReq, err := NewImageGenerationRequest("p").HTTPRequest(context.Background(), "http://localhost:8080/proxy/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/proxy/v1/images/generations", httpReq.URL.String())
}

func TestImageResponseDeserialize(t *testing.T) {
	body := `{
		"created": 1700000000,
		"data": [
			{"url": "https://example.com/a.png", "revised_prompt": "a cute green caterpillar"},
			{"b64_json": "aGVsbG8=", "revised_prompt": "another caterpillar"}
		]
	}`

	var resp ImageGenerationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, uint64(1700000000), resp.Created)
	require.Len(t, resp.Images, 2)

	first := resp.Images[0]
	require.NotNil(t, first.URL)
	assert.Equal(t, "https://example.com/a.png", *first.URL)
	assert.Nil(t, first.B64JSON)
	assert.Equal(t, "a cute green caterpillar", first.RevisedPrompt)

	second := resp.Images[1]
	assert.Nil(t, second.URL)
	require.NotNil(t, second.B64JSON)
	assert.Equal(t, "aGVsbG8=", *second.B64JSON)

	data, ok, err := second.Image()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), data)

	_, ok, err = first.Image()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestImageResponseLargeCreated(t *testing.T) {
	var resp ImageGenerationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"created":18446744073709551615,"data":[]}`), &resp))
	assert.Equal(t, uint64(18446744073709551615), resp.Created)
	assert.Empty(t, resp.Images)
}

func TestImageResponseMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no created", `{"data":[]}`, `"created"`},
		{"no data", `{"created":1}`, `"data"`},
		{"no revised prompt", `{"created":1,"data":[{"url":"u"}]}`, `"revised_prompt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ImageGenerationResponse
			err := json.Unmarshal([]byte(tt.body), &resp)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestImageResponseWrongShape(t *testing.T) {
	var resp ImageGenerationResponse
	assert.Error(t, json.Unmarshal([]byte(`{"created":"yesterday","data":[]}`), &resp))
	assert.Error(t, json.Unmarshal([]byte(`{"created":-1,"data":[]}`), &resp))
	assert.Error(t, json.Unmarshal([]byte(`{"created":1,"data":{}}`), &resp))
}

func TestImageResultBadBase64(t *testing.T) {
	bad := "not base64!"
	_, ok, err := ImageResult{B64JSON: &bad}.Image()
	assert.True(t, ok)
	assert.Error(t, err)
}
