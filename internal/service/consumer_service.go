package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/repository/specification"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the background embedding worker. Cards are written
// without an embedding first; this worker fills it in so retrieval can
// rank them by similarity. Until then they still surface via recency.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedCardMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed card message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for %s card %s", payload.CardType, payload.CardId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	switch payload.CardType {
	case "public":
		cs.embedPublicCard(ctx, uow, msg, payload)
	default:
		cs.embedUserCard(ctx, uow, msg, payload)
	}
}

func (cs *consumerService) embedUserCard(ctx context.Context, uow unitofwork.UnitOfWork, msg *message.Message, payload dto.PublishEmbedCardMessage) {
	card, err := uow.UserKBCardRepository().FindOne(ctx, specification.ByID{ID: payload.CardId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}
	if card == nil {
		// Card deleted before the worker got to it.
		log.Printf("[WARN] User card not found: %s", payload.CardId)
		msg.Ack()
		return
	}

	content := fmt.Sprintf("%s\n\n%s", card.DisplayTitle(), card.Content)
	res, err := cs.embeddingProvider.Generate(content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for user card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}

	if err := uow.UserKBCardRepository().UpdateEmbedding(ctx, card.Id, res.Embedding.Values); err != nil {
		log.Printf("[ERROR] Failed to store embedding for user card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedded user card %s", payload.CardId)
	msg.Ack()
}

func (cs *consumerService) embedPublicCard(ctx context.Context, uow unitofwork.UnitOfWork, msg *message.Message, payload dto.PublishEmbedCardMessage) {
	card, err := uow.PublicKBCardRepository().FindOne(ctx, specification.ByID{ID: payload.CardId})
	if err != nil {
		log.Printf("[ERROR] Failed to get public card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}
	if card == nil {
		log.Printf("[WARN] Public card not found: %s", payload.CardId)
		msg.Ack()
		return
	}

	content := fmt.Sprintf("%s\n\n%s", card.Title, card.Content)
	res, err := cs.embeddingProvider.Generate(content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for public card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}

	if err := uow.PublicKBCardRepository().UpdateEmbedding(ctx, card.Id, res.Embedding.Values); err != nil {
		log.Printf("[ERROR] Failed to store embedding for public card %s: %v", payload.CardId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedded public card %s", payload.CardId)
	msg.Ack()
}
