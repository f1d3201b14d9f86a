package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark-torres10/personal-tribe-of-mentors/internal/adapter/llm"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/config"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/service"
	handler "github.com/mark-torres10/personal-tribe-of-mentors/internal/transport/http"
	"github.com/mark-torres10/personal-tribe-of-mentors/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting mentors API...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("LLM Base URL: %s", cfg.LLMBaseURL)
	log.Printf("CORS Origin: %s", cfg.CORSAllowedOrigin)
	log.Printf("Strict message roles: %t", cfg.StrictMessageRoles)
	log.Printf("Log level: %s", cfg.LogLevel)

	// Initialize LLM client
	llmClient := llm.NewLLMClient(cfg.Mode, cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(llmClient, cfg, policyEngine)

	server := handler.NewServer(svc, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down mentors API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Mentors API stopped")
}
