package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepo interface {
	GetAccountByID(ctx context.Context, accountID uint64) (*model.ConnectedAccount, error)
	GetAccountsByUserID(ctx context.Context, userID uint64) ([]*model.ConnectedAccount, error)
	GetActiveAccounts(ctx context.Context) ([]*model.ConnectedAccount, error)
	UpdateAccount(ctx context.Context, account *model.ConnectedAccount) error
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (s *accountRepoImpl) GetAccountByID(ctx context.Context, accountID uint64) (*model.ConnectedAccount, error) {
	var account model.ConnectedAccount
	err := s.db.WithContext(ctx).First(&account, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (s *accountRepoImpl) GetAccountsByUserID(ctx context.Context, userID uint64) ([]*model.ConnectedAccount, error) {
	accounts := make([]*model.ConnectedAccount, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) GetActiveAccounts(ctx context.Context) ([]*model.ConnectedAccount, error) {
	accounts := make([]*model.ConnectedAccount, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) UpdateAccount(ctx context.Context, account *model.ConnectedAccount) error {
	return s.db.WithContext(ctx).Save(account).Error
}
