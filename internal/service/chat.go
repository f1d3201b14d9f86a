package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/adapter/llm"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/domain"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/persona"
	"github.com/mark-torres10/personal-tribe-of-mentors/policy"
)

// Generation parameters used for every provider call.
const (
	Model       = "openai/gpt-4o-mini"
	Temperature = 0.7
	MaxTokens   = 500
)

// Chat resolves the mentor persona, assembles the message sequence and asks
// the provider for a completion.
//
// Unknown mentors yield domain.ErrInvalidMentor and rejected history roles
// yield *domain.MessageRoleError; in both cases the provider is not
// called. Any provider failure is returned as *domain.UpstreamError.
func (s *Service) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	p, ok := persona.Lookup(req.MentorID)
	if !ok {
		return nil, domain.ErrInvalidMentor
	}

	if err := s.checkRoles(ctx, req.ConversationHistory); err != nil {
		return nil, err
	}

	temperature := Temperature
	maxTokens := MaxTokens
	completionReq := &llm.ChatCompletionRequest{
		Model:       Model,
		Messages:    BuildMessages(p.Prompt, req.ConversationHistory, req.Question),
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	callID := "chat_" + uuid.New().String()[:8]
	startTime := time.Now()

	// A client disconnect must not abort the provider call; only the
	// provider client's own timeout bounds it.
	resp, err := s.llmClient.CreateChatCompletion(context.WithoutCancel(ctx), completionReq)
	latencyMs := time.Since(startTime).Milliseconds()
	if err != nil {
		log.Printf("WARN: llm call %s for mentor %s failed after %dms: %v", callID, req.MentorID, latencyMs, err)
		return nil, &domain.UpstreamError{Err: err}
	}

	content, err := resp.Content()
	if err != nil {
		log.Printf("WARN: llm call %s for mentor %s returned unusable response: %v", callID, req.MentorID, err)
		return nil, &domain.UpstreamError{Err: err}
	}

	if resp.Usage != nil {
		log.Printf("llm call %s mentor=%s model=%s latency=%dms tokens=%d", callID, req.MentorID, Model, latencyMs, resp.Usage.TotalTokens)
	} else {
		log.Printf("llm call %s mentor=%s model=%s latency=%dms", callID, req.MentorID, Model, latencyMs)
	}

	return &domain.ChatResponse{
		MentorID:   req.MentorID,
		MentorName: req.MentorName,
		Content:    content,
	}, nil
}

// ListMentors returns the public persona catalogue.
func (s *Service) ListMentors() []domain.Persona {
	return persona.List()
}

// BuildMessages orders the system prompt, the history as given, and the
// question as the final user turn. History roles are copied verbatim.
func BuildMessages(systemPrompt string, history []domain.Message, question string) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.ChatMessage{Role: string(domain.RoleSystem), Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, llm.ChatMessage{Role: string(domain.RoleUser), Content: question})
	return messages
}

func (s *Service) checkRoles(ctx context.Context, history []domain.Message) error {
	roles := make([]string, len(history))
	for i, m := range history {
		roles[i] = string(m.Role)
	}

	decision, reason, err := s.policyEngine.CheckRoles(ctx, s.config.StrictMessageRoles, roles)
	if err != nil {
		return fmt.Errorf("role policy: %w", err)
	}
	if decision == policy.DecisionReject {
		return &domain.MessageRoleError{Reason: reason}
	}
	return nil
}
