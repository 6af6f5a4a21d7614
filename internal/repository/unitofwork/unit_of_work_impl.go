package unitofwork

import (
	"context"
	"fmt"

	"se-trainer-be/internal/repository/contract"
	"se-trainer-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrainingSessionRepository() contract.TrainingSessionRepository {
	return implementation.NewTrainingSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrainingTurnRepository() contract.TrainingTurnRepository {
	return implementation.NewTrainingTurnRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ErrorEventRepository() contract.ErrorEventRepository {
	return implementation.NewErrorEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PublicKBCardRepository() contract.PublicKBCardRepository {
	return implementation.NewPublicKBCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserKBCardRepository() contract.UserKBCardRepository {
	return implementation.NewUserKBCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UsageLedgerRepository() contract.UsageLedgerRepository {
	return implementation.NewUsageLedgerRepository(u.getDB())
}
