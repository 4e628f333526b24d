package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"google.golang.org/api/option"

	"sahayai/internal/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// CredentialProvider attempts to construct an authenticated Vision client.
type CredentialProvider func(ctx context.Context) (*visionapi.ImageAnnotatorClient, error)

// DefaultProviders returns the credential strategies in resolution order:
// ambient default credentials first, then service account JSON from the
// configured environment variable.
func DefaultProviders(cfg *config.VisionConfig) []CredentialProvider {
	return []CredentialProvider{
		AmbientProvider,
		ServiceAccountProvider(cfg.CredentialsEnvVar),
	}
}

// resolveClient tries each provider in order and returns the first client
// successfully constructed. It fails with a *CredentialError wrapping the
// last provider's failure.
func resolveClient(ctx context.Context, providers []CredentialProvider) (*visionapi.ImageAnnotatorClient, error) {
	var lastErr error
	for _, provide := range providers {
		client, err := provide(ctx)
		if err == nil {
			return client, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return nil, &CredentialError{Reason: "no credential providers configured"}
	}
	return nil, lastErr
}

// AmbientProvider builds a client from ambient default credentials, which
// are available in GCP runtime environments.
func AmbientProvider(ctx context.Context) (*visionapi.ImageAnnotatorClient, error) {
	client, err := visionapi.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, &CredentialError{Reason: "ambient default credentials unavailable", Err: err}
	}
	return client, nil
}

// serviceAccountJSON is the subset of a service account key file required
// to construct a scoped client.
type serviceAccountJSON struct {
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
}

// ServiceAccountProvider builds a client from service account JSON held in
// the named environment variable, validating the fields required for a
// scoped client before use.
func ServiceAccountProvider(envVar string) CredentialProvider {
	return func(ctx context.Context) (*visionapi.ImageAnnotatorClient, error) {
		raw := os.Getenv(envVar)
		if raw == "" {
			return nil, &CredentialError{Reason: fmt.Sprintf("%s environment variable not found", envVar)}
		}

		var sa serviceAccountJSON
		if err := json.Unmarshal([]byte(raw), &sa); err != nil {
			return nil, &CredentialError{Reason: "failed to parse service account JSON", Err: err}
		}
		if missing := missingFields(&sa); len(missing) > 0 {
			return nil, &CredentialError{
				Reason: fmt.Sprintf("missing required fields in service account JSON: %s", strings.Join(missing, ", ")),
			}
		}

		client, err := visionapi.NewImageAnnotatorClient(ctx,
			option.WithCredentialsJSON([]byte(raw)),
			option.WithScopes(cloudPlatformScope),
		)
		if err != nil {
			return nil, &CredentialError{Reason: "failed to create Vision client from service account JSON", Err: err}
		}
		return client, nil
	}
}

func missingFields(sa *serviceAccountJSON) []string {
	var missing []string
	if sa.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if sa.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if sa.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	return missing
}
