package service

import (
	"context"

	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"
	"se-trainer-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuotaService interface {
	// EnsureCanSubmit loads the user and rejects with QuotaExceededError
	// when no turns remain. This is the cheap pre-check before any AI
	// work; the commit transaction re-checks under a row lock.
	EnsureCanSubmit(ctx context.Context, userId uuid.UUID) (*entity.User, error)
	GetUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error)
	ListLedger(ctx context.Context, userId uuid.UUID) ([]*dto.LedgerEntryResponse, error)
}

type quotaService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuotaService(uowFactory unitofwork.RepositoryFactory) IQuotaService {
	return &quotaService{
		uowFactory: uowFactory,
	}
}

func (s *quotaService) EnsureCanSubmit(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
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

	return user, nil
}

func (s *quotaService) GetUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return &dto.UsageStatusResponse{
		Plan:             user.Plan,
		PlanStatus:       user.PlanStatus,
		MonthlyTurnLimit: user.MonthlyTurnLimit,
		MonthlyTurnUsed:  user.MonthlyTurnUsed,
		TurnsRemaining:   user.TurnsRemaining(),
		CanSubmitTurn:    user.CanSubmitTurn(),
	}, nil
}

func (s *quotaService) ListLedger(ctx context.Context, userId uuid.UUID) ([]*dto.LedgerEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.UsageLedgerRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = &dto.LedgerEntryResponse{
			Id:               entry.Id,
			Feature:          entry.Feature,
			Units:            entry.Units,
			RelatedSessionId: entry.RelatedSessionId,
			CreatedAt:        entry.CreatedAt,
		}
	}
	return res, nil
}
