package openai

import "errors"

// Config holds the OpenAI client configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible gateways
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

// Request is a normalized chat completion request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is a single chat turn.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Response is a normalized chat completion response.
type Response struct {
	Content string
	Usage   *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
