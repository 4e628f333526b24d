package port

import "context"

// TextRecognizer abstracts a remote document-text-detection (OCR) service.
type TextRecognizer interface {
	// Recognize returns the text detected in a single raster image. An empty
	// string is a valid result for an image with no text.
	Recognize(ctx context.Context, image []byte) (string, error)
}
