package port

import "context"

// GenerateInput carries a prompt and generation options for a single
// language model call.
type GenerateInput struct {
	Prompt string
	// Model overrides the client's default model when non-empty.
	Model string
	// ForceJSON requests JSON-typed output from the provider.
	ForceJSON bool
}

// TextGenerator abstracts a single-shot, non-streaming language model call.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
