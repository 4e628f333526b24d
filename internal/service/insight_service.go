package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"sahayai/internal/analyzer"
	"sahayai/internal/config"
	"sahayai/internal/domain"
	"sahayai/internal/port"
)

// ProcessInput is the DTO for running a document through the analysis
// pipeline.
type ProcessInput struct {
	Data     []byte
	Filename string
	Role     domain.Role
}

// ProcessResult is the pipeline outcome. Exactly one field is set: Insight
// on success, Degraded when the pipeline completed but could not produce an
// insight (no extractable text, or unparseable model output).
type ProcessResult struct {
	Insight  domain.Insight
	Degraded *domain.ErrorPayload
}

// Payload returns whichever result is set, for serialization to the client.
func (r *ProcessResult) Payload() any {
	if r.Degraded != nil {
		return r.Degraded
	}
	return r.Insight
}

// InsightService defines the document analysis contract.
type InsightService interface {
	Process(ctx context.Context, input ProcessInput) (*ProcessResult, error)
}

type insightService struct {
	extractor port.TextExtractor
	generator port.TextGenerator
	model     string
}

// NewInsightService creates a new InsightService implementation.
func NewInsightService(extractor port.TextExtractor, generator port.TextGenerator, cfg *config.GeneratorConfig) InsightService {
	return &insightService{
		extractor: extractor,
		generator: generator,
		model:     cfg.AnalysisModel,
	}
}

// Process runs the document-to-structured-insight pipeline: extract text,
// prompt the model for a structured analysis, decode its reply, and
// guarantee scraped_text is present on success.
func (s *insightService) Process(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))

	text, err := s.extractor.Extract(ctx, input.Data, ext)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return &ProcessResult{Degraded: &domain.ErrorPayload{
			Error: "No text could be extracted from the document.",
		}}, nil
	}

	prompt := analyzer.BuildAnalysisPrompt(text, input.Role)
	raw, err := s.generator.Generate(ctx, port.GenerateInput{
		Prompt:    prompt,
		Model:     s.model,
		ForceJSON: true,
	})
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	result := analyzer.DecodeInsight(raw)
	if !result.Ok() {
		return &ProcessResult{Degraded: result.Malformed}, nil
	}

	if !result.Insight.HasError() && !result.Insight.HasScrapedText() {
		result.Insight.SetScrapedText(text)
	}

	return &ProcessResult{Insight: result.Insight}, nil
}
