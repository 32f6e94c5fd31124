package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

// chatCompletionRequest is the request payload for an OpenAI-compatible
// chat completions endpoint.
type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
	Error   *chatCompletionError   `json:"error,omitempty"`
}

type chatCompletionChoice struct {
	Message *chatCompletionMessage `json:"message,omitempty"`
}

type chatCompletionError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

type openAISource struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAISource creates a Source backed by an OpenAI-compatible chat
// completions API. It works with any provider implementing that surface.
func NewOpenAISource(cfg OpenAIConfig) (Source, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("openai source requires a base URL: %w", ErrNotConfigured)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai source requires a model: %w", ErrNotConfigured)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &openAISource{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (s *openAISource) Reply(ctx context.Context, history []chat.Message) (string, error) {
	request := chatCompletionRequest{
		Model:    s.model,
		Messages: convertHistory(history),
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	url := s.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request failed: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("completion API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 || response.Choices[0].Message == nil {
		return "", fmt.Errorf("completion response has no message")
	}

	content := response.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("completion response is empty")
	}
	return content, nil
}

// convertHistory maps the session transcript onto chat completion roles.
func convertHistory(history []chat.Message) []chatCompletionMessage {
	messages := make([]chatCompletionMessage, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Sender == chat.SenderAssistant {
			role = "assistant"
		}
		messages = append(messages, chatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}
	return messages
}
