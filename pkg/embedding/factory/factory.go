package factory

import (
	"fmt"

	"se-trainer-be/pkg/embedding"
)

func NewEmbeddingProvider(providerType, apiKey, baseURL, model string) (embedding.EmbeddingProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return embedding.NewMockProvider(768), nil
		}
		return embedding.NewGeminiProvider(apiKey), nil
	case "ollama":
		return embedding.NewOllamaProvider(baseURL, model), nil
	case "mock":
		return embedding.NewMockProvider(768), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
