package ocr_test

import (
	"context"
	"errors"
	"testing"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahayai/internal/ocr/vision"
)

func failingProvider(reason string) vision.CredentialProvider {
	return func(ctx context.Context) (*visionapi.ImageAnnotatorClient, error) {
		return nil, &vision.CredentialError{Reason: reason}
	}
}

func succeedingProvider(calls *int) vision.CredentialProvider {
	return func(ctx context.Context) (*visionapi.ImageAnnotatorClient, error) {
		*calls++
		return &visionapi.ImageAnnotatorClient{}, nil
	}
}

func TestNewClientWithProviders_FirstSuccessWins(t *testing.T) {
	firstCalls, secondCalls := 0, 0

	client, err := vision.NewClientWithProviders(context.Background(), []vision.CredentialProvider{
		succeedingProvider(&firstCalls),
		succeedingProvider(&secondCalls),
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 0, secondCalls, "later providers must not be tried after a success")
}

func TestNewClientWithProviders_FallsThroughFailures(t *testing.T) {
	calls := 0

	client, err := vision.NewClientWithProviders(context.Background(), []vision.CredentialProvider{
		failingProvider("ambient default credentials unavailable"),
		succeedingProvider(&calls),
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 1, calls)
}

func TestNewClientWithProviders_AllFail_ReturnsLastError(t *testing.T) {
	_, err := vision.NewClientWithProviders(context.Background(), []vision.CredentialProvider{
		failingProvider("first failure"),
		failingProvider("second failure"),
	})

	require.Error(t, err)
	var credErr *vision.CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Contains(t, credErr.Reason, "second failure")
}

func TestNewClientWithProviders_NoProviders(t *testing.T) {
	_, err := vision.NewClientWithProviders(context.Background(), nil)

	require.Error(t, err)
	var credErr *vision.CredentialError
	assert.True(t, errors.As(err, &credErr))
}

func TestServiceAccountProvider_EnvVarMissing(t *testing.T) {
	provider := vision.ServiceAccountProvider("SAHAYAI_TEST_MISSING_CREDS")

	_, err := provider(context.Background())

	require.Error(t, err)
	var credErr *vision.CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Contains(t, credErr.Reason, "SAHAYAI_TEST_MISSING_CREDS")
	assert.Contains(t, credErr.Reason, "not found")
}

func TestServiceAccountProvider_InvalidJSON(t *testing.T) {
	t.Setenv("SAHAYAI_TEST_BAD_CREDS", "{not valid json")
	provider := vision.ServiceAccountProvider("SAHAYAI_TEST_BAD_CREDS")

	_, err := provider(context.Background())

	require.Error(t, err)
	var credErr *vision.CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Contains(t, credErr.Reason, "parse")
}

func TestServiceAccountProvider_MissingFields(t *testing.T) {
	t.Setenv("SAHAYAI_TEST_PARTIAL_CREDS", `{"type":"service_account","project_id":"demo-project"}`)
	provider := vision.ServiceAccountProvider("SAHAYAI_TEST_PARTIAL_CREDS")

	_, err := provider(context.Background())

	require.Error(t, err)
	var credErr *vision.CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Contains(t, credErr.Reason, "private_key")
	assert.Contains(t, credErr.Reason, "client_email")
	assert.NotContains(t, credErr.Reason, "project_id")
}

func TestCredentialError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &vision.CredentialError{Reason: "outer", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "outer")
	assert.Contains(t, err.Error(), "boom")
}

func TestServiceError_Message(t *testing.T) {
	err := &vision.ServiceError{Message: "image too large"}

	assert.Contains(t, err.Error(), "vision API error")
	assert.Contains(t, err.Error(), "image too large")
}
