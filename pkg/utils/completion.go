package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// CompletionClientInterface is the single contract this service has with the
// generative text API: one prompt in, one block of text (hopefully JSON) out.
type CompletionClientInterface interface {
	CompleteText(ctx context.Context, prompt string) (string, error)
	Close() error
}

const completionTimeout = 60 * time.Second

// GeminiCompletionClient implements CompletionClientInterface with Google's
// Gemini models.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (CompletionClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) CompleteText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8000)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

// OpenAICompletionClient implements CompletionClientInterface over the chat
// completions API.
type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, model string) CompletionClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICompletionClient) CompleteText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAICompletionClient) Close() error {
	return nil
}

// NewCompletionClient creates a Gemini or OpenAI client based on config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
