package models

import "fmt"

// enumTable maps each variant of a closed enumeration to its wire string.
type enumTable[T comparable] struct {
	kind  string
	names map[T]string
}

func (t enumTable[T]) marshal(v T) ([]byte, error) {
	s, ok := t.names[v]
	if !ok {
		return nil, fmt.Errorf("invalid %v", v)
	}
	return []byte(s), nil
}

func (t enumTable[T]) parse(s string) (T, error) {
	for v, name := range t.names {
		if name == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", t.kind, s)
}

func (t enumTable[T]) stringOf(v T, fallback int) string {
	if s, ok := t.names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", t.kind, fallback)
}

// ImageModel is the model used for image generation. DALL-E 3 is the only
// supported model and is the zero value.
type ImageModel int

const (
	ImageModelDallE3 ImageModel = iota
)

var imageModels = enumTable[ImageModel]{kind: "ImageModel", names: map[ImageModel]string{
	ImageModelDallE3: "dall-e-3",
}}

func (m ImageModel) String() string { return imageModels.stringOf(m, int(m)) }
func (m ImageModel) MarshalText() ([]byte, error) { return imageModels.marshal(m) }
func (m *ImageModel) UnmarshalText(text []byte) error { return unmarshalEnum(imageModels, m, text) }

// ImageQuality controls detail and consistency of the generated image.
// hd gives finer details. Only supported by dall-e-3.
type ImageQuality int

const (
	ImageQualityStandard ImageQuality = iota
	ImageQualityHD
)

var imageQualities = enumTable[ImageQuality]{kind: "ImageQuality", names: map[ImageQuality]string{
	ImageQualityStandard: "standard",
	ImageQualityHD:       "hd",
}}

func (q ImageQuality) String() string { return imageQualities.stringOf(q, int(q)) }
func (q ImageQuality) MarshalText() ([]byte, error) { return imageQualities.marshal(q) }
func (q *ImageQuality) UnmarshalText(text []byte) error { return unmarshalEnum(imageQualities, q, text) }

// ParseImageQuality returns the quality whose wire name is s.
func ParseImageQuality(s string) (ImageQuality, error) { return imageQualities.parse(s) }

// ImageResponseFormat selects whether images come back as URLs or inline base64.
type ImageResponseFormat int

const (
	ImageResponseFormatURL ImageResponseFormat = iota
	ImageResponseFormatB64JSON
)

var imageResponseFormats = enumTable[ImageResponseFormat]{kind: "ImageResponseFormat", names: map[ImageResponseFormat]string{
	ImageResponseFormatURL:     "url",
	ImageResponseFormatB64JSON: "b64_json",
}}

func (f ImageResponseFormat) String() string { return imageResponseFormats.stringOf(f, int(f)) }
func (f ImageResponseFormat) MarshalText() ([]byte, error) { return imageResponseFormats.marshal(f) }
func (f *ImageResponseFormat) UnmarshalText(text []byte) error {
	return unmarshalEnum(imageResponseFormats, f, text)
}

// ParseImageResponseFormat returns the response format whose wire name is s.
func ParseImageResponseFormat(s string) (ImageResponseFormat, error) {
	return imageResponseFormats.parse(s)
}

// ImageSize is one of the dimensions dall-e-3 accepts.
type ImageSize int

const (
	ImageSizeLarge     ImageSize = iota // 1024x1024
	ImageSizeLargeWide                  // 1792x1024
	ImageSizeLargeTall                  // 1024x1792
)

var imageSizes = enumTable[ImageSize]{kind: "ImageSize", names: map[ImageSize]string{
	ImageSizeLarge:     "1024x1024",
	ImageSizeLargeWide: "1792x1024",
	ImageSizeLargeTall: "1024x1792",
}}

func (s ImageSize) String() string { return imageSizes.stringOf(s, int(s)) }
func (s ImageSize) MarshalText() ([]byte, error) { return imageSizes.marshal(s) }
func (s *ImageSize) UnmarshalText(text []byte) error { return unmarshalEnum(imageSizes, s, text) }

// ParseImageSize returns the size whose wire name is s, e.g. "1792x1024".
func ParseImageSize(s string) (ImageSize, error) { return imageSizes.parse(s) }

// ImageStyle is vivid (hyper-real, dramatic) or natural. Only supported by dall-e-3.
type ImageStyle int

const (
	ImageStyleVivid ImageStyle = iota
	ImageStyleNatural
)

var imageStyles = enumTable[ImageStyle]{kind: "ImageStyle", names: map[ImageStyle]string{
	ImageStyleVivid:   "vivid",
	ImageStyleNatural: "natural",
}}

func (s ImageStyle) String() string { return imageStyles.stringOf(s, int(s)) }
func (s ImageStyle) MarshalText() ([]byte, error) { return imageStyles.marshal(s) }
func (s *ImageStyle) UnmarshalText(text []byte) error { return unmarshalEnum(imageStyles, s, text) }

// ParseImageStyle returns the style whose wire name is s.
func ParseImageStyle(s string) (ImageStyle, error) { return imageStyles.parse(s) }

func unmarshalEnum[T comparable](t enumTable[T], dst *T, text []byte) error {
	v, err := t.parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Values lists the wire names of every variant, for help output.
func Values[T comparable](all ...T) []string {
	out := make([]string, 0, len(all))
	for _, v := range all {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
