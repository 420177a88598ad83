package account

import "context"

// Repository is the store gateway for account records. Get returns
// (nil, nil) when the account does not exist; errors are store failures
// only.
type Repository interface {
	GetByAccountNumber(ctx context.Context, accountNumber string) (*Account, error)
}

// LoanLister returns the outstanding loans for an account. Implemented by
// the activity store; declared here to keep this package free of an
// activity dependency.
type LoanLister interface {
	LoansByAccount(ctx context.Context, accountNumber string) ([]Loan, error)
}
