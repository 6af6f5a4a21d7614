package service

import (
	"context"
	"encoding/json"
	"time"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/pkg/logger"
	"se-trainer-be/internal/repository/specification"
	"se-trainer-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITemplateService interface {
	SaveTemplate(ctx context.Context, userId uuid.UUID, req *dto.SaveTemplateRequest) (*dto.SaveTemplateResponse, error)
	ListTemplates(ctx context.Context, userId uuid.UUID, scenario string) ([]*dto.UserCardResponse, error)
	GetTemplate(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.UserCardResponse, error)
	DeleteTemplate(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListPublicCards(ctx context.Context, scenario, level string) ([]*dto.PublicCardResponse, error)
}

type templateService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewTemplateService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) ITemplateService {
	return &templateService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *templateService) SaveTemplate(ctx context.Context, userId uuid.UUID, req *dto.SaveTemplateRequest) (*dto.SaveTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card := entity.UserKBCard{
		Id:         uuid.New(),
		UserId:     userId,
		Scenario:   req.Scenario,
		SourceType: constant.UserKBSourceSavedTemplate,
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}

	if err := uow.UserKBCardRepository().Create(ctx, &card); err != nil {
		return nil, err
	}

	ledgerEntry := entity.UsageLedgerEntry{
		Id:        uuid.New(),
		UserId:    userId,
		Feature:   constant.UsageFeatureTemplateSave,
		Units:     1,
		CreatedAt: time.Now(),
	}
	if err := uow.UsageLedgerRepository().Create(ctx, &ledgerEntry); err != nil {
		return nil, err
	}

	// Embedding happens asynchronously; the card is usable immediately
	// through recency ordering.
	msgPayload := dto.PublishEmbedCardMessage{
		CardId:   card.Id,
		CardType: "user",
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("KB", "Failed to enqueue card embedding", map[string]interface{}{
			"card_id": card.Id.String(),
			"error":   err.Error(),
		})
	}

	return &dto.SaveTemplateResponse{
		Id: card.Id,
	}, nil
}

func (s *templateService) ListTemplates(ctx context.Context, userId uuid.UUID, scenario string) ([]*dto.UserCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.BySourceType{SourceType: constant.UserKBSourceSavedTemplate},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if scenario != "" {
		specs = append(specs, specification.ByScenario{Scenario: scenario})
	}

	cards, err := uow.UserKBCardRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserCardResponse, len(cards))
	for i, card := range cards {
		res[i] = &dto.UserCardResponse{
			Id:         card.Id,
			Scenario:   card.Scenario,
			SourceType: card.SourceType,
			Title:      card.DisplayTitle(),
			Content:    card.Content,
			CreatedAt:  card.CreatedAt,
		}
	}
	return res, nil
}

func (s *templateService) GetTemplate(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.UserCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, err := uow.UserKBCardRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "template not found")
	}

	return &dto.UserCardResponse{
		Id:         card.Id,
		Scenario:   card.Scenario,
		SourceType: card.SourceType,
		Title:      card.DisplayTitle(),
		Content:    card.Content,
		CreatedAt:  card.CreatedAt,
	}, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, err := uow.UserKBCardRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "template not found")
	}

	return uow.UserKBCardRepository().Delete(ctx, card.Id)
}

func (s *templateService) ListPublicCards(ctx context.Context, scenario, level string) ([]*dto.PublicCardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if scenario != "" {
		specs = append(specs, specification.ByScenario{Scenario: scenario})
	}
	if level != "" {
		specs = append(specs, specification.ByLevel{Level: level})
	}

	cards, err := uow.PublicKBCardRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PublicCardResponse, len(cards))
	for i, card := range cards {
		res[i] = &dto.PublicCardResponse{
			Id:        card.Id,
			Track:     card.Track,
			Scenario:  card.Scenario,
			Level:     card.Level,
			Subskill:  card.Subskill,
			Title:     card.Title,
			Content:   card.Content,
			WhenToUse: card.WhenToUse,
		}
	}
	return res, nil
}
