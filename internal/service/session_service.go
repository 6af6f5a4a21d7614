package service

import (
	"context"
	"time"

	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"
	"se-trainer-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	List(ctx context.Context, userId uuid.UUID, includeArchived bool) ([]*dto.SessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.UpdateSessionResponse, error)
	ListTurns(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TurnResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.TrainingSession{
		Id:        uuid.New(),
		UserId:    userId,
		Track:     req.Track,
		Scenario:  req.Scenario,
		Level:     req.Level,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}

	if err := uow.TrainingSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id: session.Id,
	}, nil
}

func (s *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	turnCount, err := uow.TrainingTurnRepository().CountBySession(ctx, session.Id)
	if err != nil {
		return nil, err
	}

	res := toSessionResponse(session)
	res.TurnCount = turnCount
	return res, nil
}

func (s *sessionService) List(ctx context.Context, userId uuid.UUID, includeArchived bool) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if !includeArchived {
		specs = append(specs, specification.NotArchived{})
	}

	sessions, err := uow.TrainingSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		res[i] = toSessionResponse(session)
	}
	return res, nil
}

func (s *sessionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.UpdateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	if req.IsArchived != nil {
		session.IsArchived = *req.IsArchived
	}

	if err := uow.TrainingSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.UpdateSessionResponse{
		Id: session.Id,
	}, nil
}

func (s *sessionService) ListTurns(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	turns, err := uow.TrainingTurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "turn_index", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TurnResponse, len(turns))
	for i, turn := range turns {
		res[i] = &dto.TurnResponse{
			Id:        turn.Id,
			TurnIndex: turn.TurnIndex,
			UserInput: turn.UserInput,
			Status:    turn.Status,
			Feedback:  turn.FeedbackObject,
			LatencyMs: turn.LatencyMs,
			CreatedAt: turn.CreatedAt,
		}
	}
	return res, nil
}

func toSessionResponse(session *entity.TrainingSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:         session.Id,
		Track:      session.Track,
		Scenario:   session.Scenario,
		Level:      session.Level,
		Title:      session.Title,
		IsArchived: session.IsArchived,
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}
