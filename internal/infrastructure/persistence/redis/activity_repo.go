package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/loudent/library/internal/domain/activity"
	apperrors "github.com/loudent/library/pkg/errors"
)

// activityRecord is the stored shape of a checkout record. The primary
// key is the bookId; the isbn and account sets mirror the store's
// secondary indexes and are kept in step transactionally with the record.
type activityRecord struct {
	BookID        string `json:"book_id"`
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	AccountNumber string `json:"account_number"`
	CheckOutDate  string `json:"check_out_date"`
	DueDate       string `json:"due_date"`
}

type activityRepository struct {
	client *redis.Client
}

// NewActivityRepository creates the Redis-backed activity gateway.
func NewActivityRepository(client *redis.Client) activity.Repository {
	return &activityRepository{client: client}
}

func (r *activityRepository) GetByBookID(ctx context.Context, bookID string) (*activity.Activity, error) {
	raw, err := r.client.Get(ctx, activityKey(bookID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity get %s failed", bookID).WithCause(err)
	}
	return decodeActivity([]byte(raw))
}

// Put overwrites on key collision: the store's key uniqueness is the only
// consistency guarantee for racing writers (last write wins).
func (r *activityRepository) Put(ctx context.Context, record *activity.Activity) error {
	raw, err := json.Marshal(activityRecord{
		BookID:        record.BookID,
		ISBN:          record.ISBN,
		Title:         record.Title,
		AccountNumber: record.AccountNumber,
		CheckOutDate:  formatDate(record.CheckOutDate),
		DueDate:       formatDate(record.DueDate),
	})
	if err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "activity encode failed").WithCause(err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, activityKey(record.BookID), raw, 0)
	pipe.SAdd(ctx, isbnIndexKey(record.ISBN), record.BookID)
	pipe.SAdd(ctx, acctIndexKey(record.AccountNumber), record.BookID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "activity put %s failed", record.BookID).WithCause(err)
	}
	return nil
}

// Delete removes the record and its index entries. Deleting an absent
// record is a no-op.
func (r *activityRepository) Delete(ctx context.Context, bookID string) error {
	existing, err := r.GetByBookID(ctx, bookID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, activityKey(bookID))
	pipe.SRem(ctx, isbnIndexKey(existing.ISBN), bookID)
	pipe.SRem(ctx, acctIndexKey(existing.AccountNumber), bookID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "activity delete %s failed", bookID).WithCause(err)
	}
	return nil
}

func (r *activityRepository) ListByISBN(ctx context.Context, isbn string) ([]*activity.Activity, error) {
	return r.listByIndex(ctx, isbnIndexKey(isbn))
}

func (r *activityRepository) ListByAccount(ctx context.Context, accountNumber string) ([]*activity.Activity, error) {
	return r.listByIndex(ctx, acctIndexKey(accountNumber))
}

// listByIndex resolves an index set into records. Members whose record is
// gone (deleted between SMEMBERS and MGET) are skipped.
func (r *activityRepository) listByIndex(ctx context.Context, indexKey string) ([]*activity.Activity, error) {
	bookIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity index %s failed", indexKey).WithCause(err)
	}
	if len(bookIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(bookIDs))
	for i, id := range bookIDs {
		keys[i] = activityKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity index %s failed", indexKey).WithCause(err)
	}

	records := make([]*activity.Activity, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		record, err := decodeActivity([]byte(raw))
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeActivity(raw []byte) (*activity.Activity, error) {
	var rec activityRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity record corrupt").WithCause(err)
	}

	checkOut, err := parseDate(rec.CheckOutDate)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity record corrupt").WithCause(err)
	}
	due, err := parseDate(rec.DueDate)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity record corrupt").WithCause(err)
	}

	return &activity.Activity{
		BookID:        rec.BookID,
		ISBN:          rec.ISBN,
		Title:         rec.Title,
		AccountNumber: rec.AccountNumber,
		CheckOutDate:  checkOut,
		DueDate:       due,
	}, nil
}
