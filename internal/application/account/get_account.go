package account

import (
	"context"
	"fmt"

	"github.com/loudent/library/internal/domain/account"
	"github.com/loudent/library/pkg/dispatch"
)

// GetAccountUseCase fetches a member profile with its outstanding loans.
type GetAccountUseCase struct {
	dispatcher *dispatch.Dispatcher
	accounts   account.Service
}

func NewGetAccountUseCase(d *dispatch.Dispatcher, accounts account.Service) *GetAccountUseCase {
	return &GetAccountUseCase{dispatcher: d, accounts: accounts}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, accountNumber string) (*account.Profile, error) {
	return dispatch.Lookup(uc.dispatcher, ctx, "getAccount",
		fmt.Sprintf("User not found for account #: %s", accountNumber),
		func(ctx context.Context) (*account.Profile, error) {
			return uc.accounts.GetByAccountNumber(ctx, accountNumber)
		})
}
