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
	"se-trainer-be/pkg/ai/feedback"
	"se-trainer-be/pkg/ai/prompt"
	"se-trainer-be/pkg/events"
	"se-trainer-be/pkg/llm"
	pktNats "se-trainer-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITurnService interface {
	SubmitTurn(ctx context.Context, userId uuid.UUID, req *dto.SubmitTurnRequest) (*dto.SubmitTurnResponse, error)
}

// turnService orchestrates one submission end to end: quota pre-check,
// retrieval, generation, validation, then a single transaction that
// assigns the turn index, consumes quota, and persists everything. A
// generation failure still commits a turn with fallback feedback; a
// quota failure commits nothing.
type turnService struct {
	uowFactory       unitofwork.RepositoryFactory
	quotaService     IQuotaService
	retrievalService IRetrievalService
	llmProvider      llm.Provider
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewTurnService(
	uowFactory unitofwork.RepositoryFactory,
	quotaService IQuotaService,
	retrievalService IRetrievalService,
	llmProvider llm.Provider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ITurnService {
	return &turnService{
		uowFactory:       uowFactory,
		quotaService:     quotaService,
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *turnService) SubmitTurn(ctx context.Context, userId uuid.UUID, req *dto.SubmitTurnRequest) (*dto.SubmitTurnResponse, error) {
	startTime := time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	if session.IsArchived {
		return nil, fiber.NewError(fiber.StatusConflict, "session is archived")
	}

	// Cheap rejection before any AI spend. The transaction below
	// re-checks under a row lock so concurrent submissions cannot slip
	// past the limit.
	if _, err := s.quotaService.EnsureCanSubmit(ctx, userId); err != nil {
		return nil, err
	}

	intent := s.retrievalService.BuildIntent(session.Scenario, req.UserInput)

	bundle, err := s.retrievalService.Retrieve(ctx, userId, session.Level, intent)
	if err != nil {
		// Retrieval problems degrade to an uninformed prompt rather
		// than blocking the learner.
		s.logger.Warn("TURN", "Retrieval failed, continuing without cards", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		bundle = &RetrievalBundle{}
	}

	fb, status := s.generateFeedback(ctx, session, bundle, req.UserInput)
	latencyMs := int(time.Since(startTime).Milliseconds())

	feedbackMap, err := feedbackToMap(fb)
	if err != nil {
		return nil, err
	}

	turn := entity.TrainingTurn{
		Id:                     uuid.New(),
		SessionId:              session.Id,
		UserInput:              req.UserInput,
		NormalizedIntent:       intent,
		RetrievedPublicCardIds: bundle.PublicCardIds,
		RetrievedUserCardIds:   bundle.UserCardIds,
		FeedbackObject:         feedbackMap,
		LatencyMs:              latencyMs,
		Status:                 status,
		CreatedAt:              time.Now(),
	}

	user, err := s.commitTurn(ctx, session, &turn, fb)
	if err != nil {
		return nil, err
	}

	s.publishTurnCommitted(ctx, user.Id, session, &turn)

	s.logger.Info("TURN", "Turn committed", map[string]interface{}{
		"turn_id":    turn.Id.String(),
		"turn_index": turn.TurnIndex,
		"status":     turn.Status,
		"latency_ms": turn.LatencyMs,
	})

	return &dto.SubmitTurnResponse{
		TurnId:         turn.Id,
		TurnIndex:      turn.TurnIndex,
		Status:         turn.Status,
		Feedback:       feedbackMap,
		LatencyMs:      turn.LatencyMs,
		TurnsRemaining: user.TurnsRemaining(),
	}, nil
}

// generateFeedback runs prompt assembly, the model call, and output
// validation. It cannot fail: any error collapses into the fallback
// feedback with status "fallback".
func (s *turnService) generateFeedback(ctx context.Context, session *entity.TrainingSession, bundle *RetrievalBundle, userInput string) (*feedback.Feedback, string) {
	builder := prompt.NewCoachBuilder(session.Scenario, session.Level, bundle.Cards, userInput)

	raw, err := s.llmProvider.GenerateStructured(ctx, builder.Build(), prompt.OutputSchema())
	if err != nil {
		s.logger.Warn("TURN", "Generation failed, using fallback feedback", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return feedback.Fallback(userInput), constant.TurnStatusFallback
	}

	fb, err := feedback.Validate(raw)
	if err != nil {
		s.logger.Warn("TURN", "Output validation failed, using fallback feedback", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return feedback.Fallback(userInput), constant.TurnStatusFallback
	}

	return fb, constant.TurnStatusSuccess
}

// commitTurn runs the single atomic write for a submission. Lock order is
// session row then user row, identical on every code path.
func (s *turnService) commitTurn(ctx context.Context, session *entity.TrainingSession, turn *entity.TrainingTurn, fb *feedback.Feedback) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// The session lock serializes turn-index assignment.
	lockedSession, err := uow.TrainingSessionRepository().FindOneForUpdate(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	if lockedSession == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	count, err := uow.TrainingTurnRepository().CountBySession(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	turn.TurnIndex = int(count) + 1

	// Re-check quota under the user row lock; the pre-check was racy.
	user, err := uow.UserRepository().FindOneForUpdate(ctx, session.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if !user.CanSubmitTurn() {
		return nil, &dto.QuotaExceededError{
			Limit: user.MonthlyTurnLimit,
			Used:  user.MonthlyTurnUsed,
		}
	}

	if err := uow.TrainingTurnRepository().Create(ctx, turn); err != nil {
		return nil, err
	}

	errorEvents := make([]*entity.ErrorEvent, 0, len(fb.ErrorTags))
	now := time.Now()
	for _, tag := range fb.ErrorTags {
		errorEvents = append(errorEvents, &entity.ErrorEvent{
			Id:        uuid.New(),
			UserId:    user.Id,
			SessionId: session.Id,
			TurnId:    turn.Id,
			Scenario:  session.Scenario,
			ErrorTag:  tag,
			CreatedAt: now,
		})
	}
	if err := uow.ErrorEventRepository().CreateBulk(ctx, errorEvents); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().IncrementTurnUsage(ctx, user.Id, 1); err != nil {
		return nil, err
	}

	ledgerEntry := entity.UsageLedgerEntry{
		Id:               uuid.New(),
		UserId:           user.Id,
		Feature:          constant.UsageFeatureTurnSubmit,
		Units:            1,
		RelatedSessionId: &session.Id,
		CreatedAt:        now,
	}
	if err := uow.UsageLedgerRepository().Create(ctx, &ledgerEntry); err != nil {
		return nil, err
	}

	if err := uow.TrainingSessionRepository().Touch(ctx, session.Id, now); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	user.MonthlyTurnUsed++
	return user, nil
}

func (s *turnService) publishTurnCommitted(ctx context.Context, userId uuid.UUID, session *entity.TrainingSession, turn *entity.TrainingTurn) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: "TURN_COMMITTED",
		Data: map[string]interface{}{
			"turn_id":    turn.Id,
			"session_id": session.Id,
			"user_id":    userId,
			"scenario":   session.Scenario,
			"turn_index": turn.TurnIndex,
			"status":     turn.Status,
			"latency_ms": turn.LatencyMs,
		},
		OccurredAt: time.Now(),
	}

	// Reporting is auxiliary; never fail the request over it.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("TURN", "Failed to publish TURN_COMMITTED event", map[string]interface{}{
			"turn_id": turn.Id.String(),
			"error":   err.Error(),
		})
	}
}

func feedbackToMap(fb *feedback.Feedback) (map[string]interface{}, error) {
	raw, err := json.Marshal(fb)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
