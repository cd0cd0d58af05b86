package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type AccountService interface {
	GetAccounts(ctx context.Context, userID uint64) ([]*dto.AccountDTO, error)
	GetAccount(ctx context.Context, userID uint64, accountID uint64) (*dto.AccountDTO, error)
	DeactivateAccount(ctx context.Context, userID uint64, accountID uint64) error
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &accountServiceImpl{accountRepo: accountRepo}
}

func (s *accountServiceImpl) GetAccounts(ctx context.Context, userID uint64) ([]*dto.AccountDTO, error) {
	accounts, err := s.accountRepo.GetAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		accountDTO, err := toAccountDTO(account)
		if err != nil {
			return nil, err
		}
		result = append(result, accountDTO)
	}
	return result, nil
}

func (s *accountServiceImpl) GetAccount(ctx context.Context, userID uint64, accountID uint64) (*dto.AccountDTO, error) {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return toAccountDTO(account)
}

// DeactivateAccount 断开账号连接。只置为未激活，
// 历史快照保留，组件解析会以硬错误提示账号不可用
func (s *accountServiceImpl) DeactivateAccount(ctx context.Context, userID uint64, accountID uint64) error {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return err
	}
	account.IsActive = false
	account.AccessToken = ""
	return s.accountRepo.UpdateAccount(ctx, account)
}

func (s *accountServiceImpl) getOwnedAccount(ctx context.Context, userID uint64, accountID uint64) (*model.ConnectedAccount, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.UserID != userID {
		return nil, UnauthorizedError
	}
	return account, nil
}

func toAccountDTO(account *model.ConnectedAccount) (*dto.AccountDTO, error) {
	accountDTO := &dto.AccountDTO{}
	if err := copier.Copy(accountDTO, account); err != nil {
		return nil, err
	}
	return accountDTO, nil
}
