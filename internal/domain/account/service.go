package account

import (
	"context"

	"github.com/sirupsen/logrus"

	apperrors "github.com/loudent/library/pkg/errors"
)

// Service exposes account lookups enriched with the borrowed-book list.
type Service interface {
	// GetByAccountNumber returns the enriched profile, or (nil, nil)
	// when no such account exists.
	GetByAccountNumber(ctx context.Context, accountNumber string) (*Profile, error)

	// Exists reports whether the account exists. A store failure counts
	// as non-existent: the checkout precondition fails closed.
	Exists(ctx context.Context, accountNumber string) bool
}

type service struct {
	repo  Repository
	loans LoanLister
}

// NewService creates the account service.
func NewService(repo Repository, loans LoanLister) Service {
	return &service{repo: repo, loans: loans}
}

func (s *service) GetByAccountNumber(ctx context.Context, accountNumber string) (*Profile, error) {
	acct, err := s.repo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, apperrors.Wrapf(err, "Failed to retrieve account #%s", accountNumber)
	}
	if acct == nil {
		return nil, nil
	}

	loans, err := s.loans.LoansByAccount(ctx, accountNumber)
	if err != nil {
		return nil, apperrors.Wrapf(err, "Failed to list loans for account #%s", accountNumber)
	}

	return &Profile{Account: *acct, BorrowedBooks: loans}, nil
}

func (s *service) Exists(ctx context.Context, accountNumber string) bool {
	acct, err := s.repo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logrus.WithError(err).WithField("account", accountNumber).
			Debug("account lookup failed")
		return false
	}
	return acct != nil
}
