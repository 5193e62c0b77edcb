package analyzer

import (
	"context"

	"github.com/shivangi1713/The-Intelligent-Content-API/models"
)

const analysisSystemPrompt = `You summarize text and return JSON with keys ` +
	`"summary" and "sentiment". Sentiment must be exactly one of ` +
	`"Positive", "Negative", or "Neutral".`

// Result is a completed analysis of a text submission.
type Result struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// Provider maps a specific LLM backend (e.g. OpenAI, Gemini)
type Provider interface {
	GetID() string // "openai", "gemini"
	Analyze(ctx context.Context, text string) (*Result, error)
}

// validSentiment reports whether a provider returned one of the three
// allowed labels.
func validSentiment(s string) bool {
	switch s {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
		return true
	}
	return false
}
