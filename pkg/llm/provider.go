package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature or a model override.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend capable of
// structured JSON output.
type Provider interface {
	// GenerateStructured sends a prompt and a JSON schema to the model and
	// returns the decoded JSON object. The provider enforces JSON output
	// but makes no guarantee the object satisfies the schema; callers
	// validate the result themselves.
	GenerateStructured(ctx context.Context, prompt string, schema map[string]interface{}, options ...Option) (map[string]interface{}, error)
}
