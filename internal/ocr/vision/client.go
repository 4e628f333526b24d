// Package vision adapts Google Cloud Vision document text detection to the
// port.TextRecognizer seam. Credentials resolve once per process: ambient
// default credentials first, then service account JSON supplied through an
// environment variable.
package vision

import (
	"context"
	"fmt"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"sahayai/internal/config"
)

// Client implements port.TextRecognizer against the Vision API.
type Client struct {
	api *visionapi.ImageAnnotatorClient
}

// NewClient resolves credentials and constructs a Vision OCR client.
func NewClient(ctx context.Context, cfg *config.VisionConfig) (*Client, error) {
	return newClient(ctx, DefaultProviders(cfg))
}

// NewClientWithProviders constructs a client from an explicit provider
// chain (for testing).
func NewClientWithProviders(ctx context.Context, providers []CredentialProvider) (*Client, error) {
	return newClient(ctx, providers)
}

func newClient(ctx context.Context, providers []CredentialProvider) (*Client, error) {
	api, err := resolveClient(ctx, providers)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// Recognize runs document text detection on a single image and returns the
// full recognized text. A service-reported error becomes a *ServiceError;
// an image without text yields an empty string.
func (c *Client) Recognize(ctx context.Context, image []byte) (string, error) {
	batch, err := c.api.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("calling vision API: %w", err)
	}
	var resp *visionpb.AnnotateImageResponse
	if responses := batch.GetResponses(); len(responses) > 0 {
		resp = responses[0]
	}
	if msg := resp.GetError().GetMessage(); msg != "" {
		return "", &ServiceError{Message: msg}
	}
	return resp.GetFullTextAnnotation().GetText(), nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.api.Close()
}
