package analyzer

import (
	"context"
	"log"
	"os"
)

// FallbackSource identifies the local heuristic in analysis results.
const FallbackSource = "fallback"

// Manager routes an analysis request to the configured LLM providers in
// order, one attempt each, and recovers with the local heuristic when none
// succeeds. No retries, no caching: each call is exactly one pass.
type Manager struct {
	providerList []Provider
}

// NewManager builds a manager from the environment: OPENAI_API_KEY and
// GEMINI_API_KEY each enable their provider. With neither set, every
// analysis uses the fallback.
func NewManager() *Manager {
	m := &Manager{}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		m.providerList = append(m.providerList, NewOpenAIProvider(key))
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		m.providerList = append(m.providerList, NewGeminiProvider(key))
	}
	return m
}

// NewManagerWith builds a manager over an explicit provider list.
func NewManagerWith(providers ...Provider) *Manager {
	return &Manager{providerList: providers}
}

// Analyze returns the analysis of text and the ID of the provider that
// produced it (FallbackSource for the heuristic). It never fails: provider
// errors are logged and absorbed.
func (m *Manager) Analyze(ctx context.Context, text string) (*Result, string) {
	for _, p := range m.providerList {
		res, err := p.Analyze(ctx, text)
		if err != nil {
			log.Printf("Analyzer %s failed: %v", p.GetID(), err)
			continue
		}
		return res, p.GetID()
	}
	return Fallback(text), FallbackSource
}
