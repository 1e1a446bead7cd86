package openai

const (
	// DefaultModel is the default OpenAI chat model
	DefaultModel = "gpt-4o-mini"
)
