package unitofwork

import (
	"context"

	"se-trainer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TrainingSessionRepository() contract.TrainingSessionRepository
	TrainingTurnRepository() contract.TrainingTurnRepository
	ErrorEventRepository() contract.ErrorEventRepository
	PublicKBCardRepository() contract.PublicKBCardRepository
	UserKBCardRepository() contract.UserKBCardRepository
	UsageLedgerRepository() contract.UsageLedgerRepository
}
