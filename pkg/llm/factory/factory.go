package factory

import (
	"fmt"

	"se-trainer-be/pkg/llm"
	"se-trainer-be/pkg/llm/gemini"
	"se-trainer-be/pkg/llm/mock"
)

func NewLLMProvider(providerType, apiKey, modelName string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			// No key, fall back to the deterministic mock so local
			// environments still work end to end.
			return mock.NewMockProvider(), nil
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "mock":
		return mock.NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
