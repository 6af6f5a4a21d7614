package embedding

import (
	"hash/fnv"
	"math/rand"
)

// MockProvider returns deterministic pseudo-embeddings derived from the
// input text. Identical inputs always map to identical vectors, which is
// enough for similarity ordering in tests and keyless local setups.
type MockProvider struct {
	Dimensions int
}

func NewMockProvider(dimensions int) EmbeddingProvider {
	if dimensions <= 0 {
		dimensions = 768
	}
	return &MockProvider{Dimensions: dimensions}
}

func (p *MockProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	values := make([]float32, p.Dimensions)
	for i := range values {
		values[i] = rng.Float32()*2 - 1
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizeVector(values),
		},
	}, nil
}
