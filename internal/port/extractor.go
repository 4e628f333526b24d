package port

import "context"

// TextExtractor abstracts plain-text extraction from raw document bytes.
type TextExtractor interface {
	// Extract produces the document's text for the declared extension
	// (without dot, lowercase). It fails with domain.ErrUnsupportedFileType
	// for extensions outside the supported set.
	Extract(ctx context.Context, data []byte, ext string) (string, error)
}
