package ports

import "context"

// ImageTextExtractor extracts text from an uploaded payment-proof image.
// The implementation is an external capability; only the extracted text is
// part of the core checkout flow.
type ImageTextExtractor interface {
	Extract(ctx context.Context, imageDataURL string) (string, error)
}
