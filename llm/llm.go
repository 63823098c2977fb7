// Package llm asks an OpenAI chat model to invent a frog.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 60 * time.Second

const systemPrompt = "You are a creative game designer creating unique frog characters for an adventure game."

const userPrompt = `Create a unique frog character for an adventure game. Be creative and whimsical!
The frog should have:
- A memorable name (not generic like 'Hoppy')
- An interesting species (can be real or fantastical)
- Vivid appearance description
- Distinct personality traits
- A unique special ability that would help in adventures
- Detailed description of how their ability works
- Their favorite food (be creative!)
- One unique quirk or trait
- A brief, interesting backstory (2-3 sentences)`

// ErrEmptyResponse is returned when the model produced no usable content.
var ErrEmptyResponse = errors.New("empty response from model")

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	BaseURL string // optional, for proxies and tests
}

// Client generates frog payloads through the chat completions API.
type Client struct {
	api   openai.Client
	model string
}

// New creates a client. The request timeout applies to the whole HTTP
// exchange and retries are disabled.
func New(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:   openai.NewClient(opts...),
		model: model,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Hatch requests one frog and returns the raw JSON content of the reply.
func (c *Client) Hatch(ctx context.Context) ([]byte, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0.9),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "frog_character",
					Description: openai.String("A generated frog character"),
					Schema:      frogSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return nil, fmt.Errorf("model refused: %s", msg.Refusal)
	}
	if msg.Content == "" {
		return nil, ErrEmptyResponse
	}
	return []byte(msg.Content), nil
}
