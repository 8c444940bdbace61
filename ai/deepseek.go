package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func init() {
	RegisterProvider("deepseek", newDeepSeek)
}

const (
	deepSeekBaseURL      = "https://api.deepseek.com"
	deepSeekDefaultModel = "deepseek-chat"
)

type DeepSeekRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type DeepSeekResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

type deepSeek struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func newDeepSeek(cfg FactoryConfig) (Generator, error) {
	if cfg.DeepSeekKey == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY not configured")
	}
	return &deepSeek{
		apiKey:     cfg.DeepSeekKey,
		model:      valueOrDefault(cfg.Model, deepSeekDefaultModel),
		baseURL:    strings.TrimRight(valueOrDefault(cfg.BaseURL, deepSeekBaseURL), "/"),
		httpClient: httpClient(cfg),
	}, nil
}

// Generate uses JSON mode; the chat API has no schema parameter, so the
// schema travels in the user prompt.
func (d *deepSeek) Generate(ctx context.Context, schema *Schema, prompt string) ([]byte, error) {
	content := prompt
	if schema != nil {
		content = fmt.Sprintf("%s\n\nRespond with a single JSON object matching this schema:\n%s", prompt, schema)
	}

	requestBody := DeepSeekRequest{
		Model: d.model,
		Messages: []Message{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: content},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("DeepSeek API error: %s", strings.TrimSpace(string(body)))
	}

	var response DeepSeekResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("deepseek: %w", ErrEmptyResponse)
	}

	return []byte(response.Choices[0].Message.Content), nil
}
