package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"sahayai/internal/config"
	"sahayai/internal/extract"
	"sahayai/internal/handler"
	"sahayai/internal/llm/gemini"
	"sahayai/internal/ocr/vision"
	"sahayai/internal/router"
	"sahayai/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	// Credentials resolve once per process; a failure here is fatal.
	ocrClient, err := vision.NewClient(ctx, &cfg.Vision)
	if err != nil {
		return fmt.Errorf("failed to initialize Vision client: %w", err)
	}
	defer func() { _ = ocrClient.Close() }()

	generator := gemini.NewClient(&cfg.Generator)
	extractor := extract.New(ocrClient, cfg.Extract.OCRConcurrency)

	// Initialize services
	insightSvc := service.NewInsightService(extractor, generator, &cfg.Generator)
	chatSvc := service.NewChatService(generator, &cfg.Generator)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(insightSvc, &cfg.Upload)
	chatH := handler.NewChatHandler(chatSvc)
	healthH := handler.NewHealthHandler(cfg.Generator.APIKey != "")

	// Setup router
	r := router.Setup(cfg, documentH, chatH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
