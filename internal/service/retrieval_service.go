package service

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/pkg/logger"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/pkg/ai/prompt"
	"se-trainer-be/pkg/embedding"

	"github.com/google/uuid"
)

// RetrievalBundle is the ordered reference material for one turn. User
// cards come first so personal phrasing outranks curated content in the
// prompt; the stored ID lists preserve the same order for replay.
type RetrievalBundle struct {
	Cards         []prompt.Card
	UserCardIds   []uuid.UUID
	PublicCardIds []uuid.UUID
}

type IRetrievalService interface {
	// BuildIntent derives the retrieval driver from one submission. No
	// model call involved; it must stay cheap and deterministic.
	BuildIntent(scenario, userInput string) entity.NormalizedIntent
	Retrieve(ctx context.Context, userId uuid.UUID, level string, intent entity.NormalizedIntent) (*RetrievalBundle, error)
}

type retrievalService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
	userTopK          int
	publicTopK        int
}

func NewRetrievalService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
	userTopK, publicTopK int,
) IRetrievalService {
	if userTopK <= 0 {
		userTopK = 3
	}
	if publicTopK <= 0 {
		publicTopK = 5
	}
	return &retrievalService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
		userTopK:          userTopK,
		publicTopK:        publicTopK,
	}
}

func (s *retrievalService) BuildIntent(scenario, userInput string) entity.NormalizedIntent {
	query := userInput
	if runes := []rune(query); len(runes) > 200 {
		query = string(runes[:200])
	}
	return entity.NormalizedIntent{
		Scenario:       scenario,
		RetrievalQuery: query,
	}
}

func (s *retrievalService) Retrieve(ctx context.Context, userId uuid.UUID, level string, intent entity.NormalizedIntent) (*RetrievalBundle, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Embedding failure degrades to recency ordering, it never blocks
	// the turn.
	var queryEmbedding []float32
	if intent.RetrievalQuery != "" {
		res, err := s.embeddingProvider.Generate(intent.RetrievalQuery, "RETRIEVAL_QUERY")
		if err != nil {
			s.logger.Warn("RETRIEVAL", "Failed to embed retrieval query", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			queryEmbedding = res.Embedding.Values
		}
	}

	userCards, err := uow.UserKBCardRepository().Search(ctx, userId, intent.Scenario, queryEmbedding, s.userTopK)
	if err != nil {
		return nil, err
	}

	publicCards, err := uow.PublicKBCardRepository().Search(ctx, intent.Scenario, level, intent.Subskills, queryEmbedding, s.publicTopK)
	if err != nil {
		return nil, err
	}

	bundle := &RetrievalBundle{
		Cards:         make([]prompt.Card, 0, len(userCards)+len(publicCards)),
		UserCardIds:   make([]uuid.UUID, 0, len(userCards)),
		PublicCardIds: make([]uuid.UUID, 0, len(publicCards)),
	}

	for _, card := range userCards {
		bundle.Cards = append(bundle.Cards, prompt.Card{
			Title:   card.DisplayTitle(),
			Content: card.Content,
			Source:  "user_kb",
		})
		bundle.UserCardIds = append(bundle.UserCardIds, card.Id)
	}

	for _, card := range publicCards {
		bundle.Cards = append(bundle.Cards, prompt.Card{
			Title:   card.Title,
			Content: card.Content,
			Source:  "public_kb",
		})
		bundle.PublicCardIds = append(bundle.PublicCardIds, card.Id)
	}

	s.logger.Info("RETRIEVAL", "Retrieved KB cards", map[string]interface{}{
		"scenario":     intent.Scenario,
		"user_cards":   len(userCards),
		"public_cards": len(publicCards),
	})

	return bundle, nil
}
