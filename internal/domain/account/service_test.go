package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	accounts map[string]*Account
	err      error
}

func (r *stubRepo) GetByAccountNumber(_ context.Context, accountNumber string) (*Account, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.accounts[accountNumber], nil
}

type stubLoanLister struct {
	loans map[string][]Loan
	err   error
}

func (l *stubLoanLister) LoansByAccount(_ context.Context, accountNumber string) ([]Loan, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.loans[accountNumber], nil
}

var ada = &Account{
	AccountNumber: "12345",
	FirstName:     "Ada",
	LastName:      "Lovelace",
	MemberSince:   time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
}

func TestGetByAccountNumber(t *testing.T) {
	loans := []Loan{{
		BookID:       "isbn-1.1",
		Title:        "Good Omens",
		CheckOutDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	}}

	svc := NewService(
		&stubRepo{accounts: map[string]*Account{"12345": ada}},
		&stubLoanLister{loans: map[string][]Loan{"12345": loans}},
	)

	t.Run("enriched with loans", func(t *testing.T) {
		got, err := svc.GetByAccountNumber(context.Background(), "12345")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, loans, got.BorrowedBooks)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		got, err := svc.GetByAccountNumber(context.Background(), "999")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("loan listing failure propagates", func(t *testing.T) {
		svc := NewService(
			&stubRepo{accounts: map[string]*Account{"12345": ada}},
			&stubLoanLister{err: errors.New("index down")},
		)
		_, err := svc.GetByAccountNumber(context.Background(), "12345")
		assert.Error(t, err)
	})
}

func TestExists(t *testing.T) {
	svc := NewService(
		&stubRepo{accounts: map[string]*Account{"12345": ada}},
		&stubLoanLister{},
	)

	assert.True(t, svc.Exists(context.Background(), "12345"))
	assert.False(t, svc.Exists(context.Background(), "999"))

	t.Run("store failure fails closed", func(t *testing.T) {
		svc := NewService(&stubRepo{err: errors.New("down")}, &stubLoanLister{})
		assert.False(t, svc.Exists(context.Background(), "12345"))
	})
}
