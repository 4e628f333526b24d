package service

import (
	"context"
	"fmt"

	"sahayai/internal/analyzer"
	"sahayai/internal/config"
	"sahayai/internal/domain"
	"sahayai/internal/port"
)

// AnswerInput is the DTO for a follow-up question against extracted
// document text.
type AnswerInput struct {
	Question string
	Context  string
	// Role is an open string here, unlike the analysis endpoint; empty
	// defaults to "user".
	Role string
}

// ChatService defines the document Q&A contract.
type ChatService interface {
	Answer(ctx context.Context, input AnswerInput) (*domain.ChatAnswer, error)
}

type chatService struct {
	generator port.TextGenerator
	model     string
}

// NewChatService creates a new ChatService implementation.
func NewChatService(generator port.TextGenerator, cfg *config.GeneratorConfig) ChatService {
	return &chatService{
		generator: generator,
		model:     cfg.ChatModel,
	}
}

// Answer asks the model the user's question, grounded in the supplied
// document context. The reply is returned as-is; no parsing is applied.
func (s *chatService) Answer(ctx context.Context, input AnswerInput) (*domain.ChatAnswer, error) {
	role := input.Role
	if role == "" {
		role = string(domain.RoleUser)
	}

	prompt := analyzer.BuildChatPrompt(input.Question, input.Context, role)
	raw, err := s.generator.Generate(ctx, port.GenerateInput{
		Prompt: prompt,
		Model:  s.model,
	})
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	return &domain.ChatAnswer{Answer: raw}, nil
}
