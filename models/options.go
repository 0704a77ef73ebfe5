package models

// ImageOption sets one optional field of an ImageGenerationRequest.
type ImageOption func(*ImageGenerationRequest)

// WithImageCount sets the number of images to generate.
func WithImageCount(n int) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.Count = &n
	}
}

// WithImageQuality sets the image quality.
func WithImageQuality(q ImageQuality) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.Quality = &q
	}
}

// WithImageResponseFormat chooses between URL and inline base64 results.
func WithImageResponseFormat(f ImageResponseFormat) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.ResponseFormat = &f
	}
}

// WithImageSize sets the image dimensions.
func WithImageSize(s ImageSize) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.Size = &s
	}
}

// WithImageStyle sets the visual style.
func WithImageStyle(s ImageStyle) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.Style = &s
	}
}

// WithImageUser tags the request with an end-user identifier.
func WithImageUser(user string) ImageOption {
	return func(r *ImageGenerationRequest) {
		r.User = &user
	}
}
