// Package service implements the mentor chat flow.
package service

import (
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/adapter/llm"
	"github.com/mark-torres10/personal-tribe-of-mentors/internal/config"
	"github.com/mark-torres10/personal-tribe-of-mentors/policy"
)

type Service struct {
	llmClient    llm.LLMClient
	config       *config.Config
	policyEngine *policy.Engine
}

func New(llmClient llm.LLMClient, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		llmClient:    llmClient,
		config:       cfg,
		policyEngine: policyEngine,
	}
}
