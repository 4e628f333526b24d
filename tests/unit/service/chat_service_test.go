package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sahayai/internal/config"
	"sahayai/internal/port"
	"sahayai/internal/service"
	"sahayai/mocks"
)

func setupChatService() (service.ChatService, *mocks.MockTextGenerator) {
	generator := new(mocks.MockTextGenerator)
	cfg := &config.GeneratorConfig{ChatModel: "gemini-2.5-flash-lite"}
	return service.NewChatService(generator, cfg), generator
}

func TestChatService_Answer_Success(t *testing.T) {
	svc, generator := setupChatService()

	generator.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.Model == "gemini-2.5-flash-lite" && !in.ForceJSON
	})).Return(`The notice period is 30 days ("either party may terminate with thirty (30) days written notice").`, nil)

	answer, err := svc.Answer(context.Background(), service.AnswerInput{
		Question: "What is the notice period?",
		Context:  "Clause 5: either party may terminate with thirty (30) days written notice.",
		Role:     "plaintiff",
	})

	require.NoError(t, err)
	assert.Contains(t, answer.Answer, "30 days")
	generator.AssertExpectations(t)
}

func TestChatService_Answer_PromptEmbedsContextAndQuestion(t *testing.T) {
	svc, generator := setupChatService()

	var capturedPrompt string
	generator.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedPrompt = args.Get(1).(port.GenerateInput).Prompt
		}).
		Return("answer", nil)

	docContext := "Section 12.3: The security deposit shall be returned within 45 days of lease termination."
	question := "When is the deposit returned?"

	_, err := svc.Answer(context.Background(), service.AnswerInput{
		Question: question,
		Context:  docContext,
		Role:     "defendant",
	})

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, docContext, "document context must be embedded verbatim")
	assert.Contains(t, capturedPrompt, question)
	assert.Contains(t, capturedPrompt, "defendant")
}

func TestChatService_Answer_RoleDefaultsToUser(t *testing.T) {
	svc, generator := setupChatService()

	var capturedPrompt string
	generator.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedPrompt = args.Get(1).(port.GenerateInput).Prompt
		}).
		Return("answer", nil)

	_, err := svc.Answer(context.Background(), service.AnswerInput{
		Question: "q",
		Context:  "c",
	})

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "user")
}

func TestChatService_Answer_ArbitraryRoleAccepted(t *testing.T) {
	svc, generator := setupChatService()

	var capturedPrompt string
	generator.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedPrompt = args.Get(1).(port.GenerateInput).Prompt
		}).
		Return("answer", nil)

	_, err := svc.Answer(context.Background(), service.AnswerInput{
		Question: "q",
		Context:  "c",
		Role:     "witness",
	})

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "witness")
}

func TestChatService_Answer_GeneratorFailurePropagates(t *testing.T) {
	svc, generator := setupChatService()

	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("gemini API error (status 503)"))

	_, err := svc.Answer(context.Background(), service.AnswerInput{
		Question: "q",
		Context:  "c",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating answer")
}
