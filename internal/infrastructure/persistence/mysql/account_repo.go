package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/loudent/library/internal/domain/account"
	apperrors "github.com/loudent/library/pkg/errors"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates the MySQL-backed account gateway.
func NewAccountRepository(db *gorm.DB) account.Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*account.Account, error) {
	var model AccountModel
	err := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "account get %s failed", accountNumber).WithCause(err)
	}
	return &account.Account{
		AccountNumber: model.AccountNumber,
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		MemberSince:   model.MemberSince,
	}, nil
}
