package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loudent/library/internal/domain/account"
	apperrors "github.com/loudent/library/pkg/errors"
)

// accountRecord is the stored shape of an account. Dates are calendar
// dates, stored as "2006-01-02".
type accountRecord struct {
	AccountNumber string `json:"account_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	MemberSince   string `json:"member_since"`
}

type accountRepository struct {
	client *redis.Client
}

// NewAccountRepository creates the Redis-backed account gateway.
func NewAccountRepository(client *redis.Client) account.Repository {
	return &accountRepository{client: client}
}

func (r *accountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*account.Account, error) {
	raw, err := r.client.Get(ctx, accountKey(accountNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "account get %s failed", accountNumber).WithCause(err)
	}

	var rec accountRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "account record corrupt").WithCause(err)
	}

	memberSince, err := parseDate(rec.MemberSince)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "account record corrupt").WithCause(err)
	}

	return &account.Account{
		AccountNumber: rec.AccountNumber,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		MemberSince:   memberSince,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
