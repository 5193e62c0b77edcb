package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const geminiAPI = "https://generativelanguage.googleapis.com/v1beta"

type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: geminiAPI,
		model:   "gemini-2.0-flash",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *GeminiProvider) GetID() string {
	return "gemini"
}

// --- External API Models (Private) ---

type gemPart struct {
	Text string `json:"text"`
}

type gemContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []gemPart `json:"parts"`
}

type gemRequest struct {
	SystemInstruction *gemContent  `json:"system_instruction,omitempty"`
	Contents          []gemContent `json:"contents"`
	GenerationConfig  struct {
		ResponseMIMEType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type gemResponse struct {
	Candidates []struct {
		Content gemContent `json:"content"`
	} `json:"candidates"`
}

func (p *GeminiProvider) Analyze(ctx context.Context, text string) (*Result, error) {
	reqBody := gemRequest{
		SystemInstruction: &gemContent{Parts: []gemPart{{Text: analysisSystemPrompt}}},
		Contents: []gemContent{
			{Role: "user", Parts: []gemPart{{Text: text}}},
		},
	}
	reqBody.GenerationConfig.ResponseMIMEType = "application/json"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: status %d: %s", resp.StatusCode, body)
	}

	var raw gemResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty candidates")
	}

	var result Result
	if err := json.Unmarshal([]byte(raw.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, fmt.Errorf("gemini: malformed completion: %w", err)
	}
	if result.Summary == "" || !validSentiment(result.Sentiment) {
		return nil, fmt.Errorf("gemini: incomplete analysis")
	}

	return &result, nil
}
