package activity

import (
	"context"

	"github.com/loudent/library/internal/domain/account"
	"github.com/loudent/library/internal/domain/catalog"
)

// loanCounter adapts the activity store to catalog.LoanCounter.
type loanCounter struct {
	repo Repository
}

// NewLoanCounter exposes active-checkout counts per ISBN for availability
// enrichment.
func NewLoanCounter(repo Repository) catalog.LoanCounter {
	return &loanCounter{repo: repo}
}

func (c *loanCounter) ActiveLoansByISBN(ctx context.Context, isbn string) (int, error) {
	records, err := c.repo.ListByISBN(ctx, isbn)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// loanLister adapts the activity store to account.LoanLister.
type loanLister struct {
	repo Repository
}

// NewLoanLister exposes the outstanding loans of an account for profile
// enrichment.
func NewLoanLister(repo Repository) account.LoanLister {
	return &loanLister{repo: repo}
}

func (l *loanLister) LoansByAccount(ctx context.Context, accountNumber string) ([]account.Loan, error) {
	records, err := l.repo.ListByAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	loans := make([]account.Loan, 0, len(records))
	for _, r := range records {
		loans = append(loans, account.Loan{
			BookID:       r.BookID,
			Title:        r.Title,
			CheckOutDate: r.CheckOutDate,
			DueDate:      r.DueDate,
		})
	}
	return loans, nil
}

// accountChecker adapts the account service to the checkout precondition.
type accountChecker struct {
	accounts account.Service
}

// NewAccountChecker wraps the account service for the once-per-batch
// existence check.
func NewAccountChecker(accounts account.Service) AccountChecker {
	return &accountChecker{accounts: accounts}
}

func (c *accountChecker) Exists(ctx context.Context, accountNumber string) bool {
	return c.accounts.Exists(ctx, accountNumber)
}
