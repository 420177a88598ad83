package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/loudent/library/internal/domain/activity"
	apperrors "github.com/loudent/library/pkg/errors"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates the MySQL-backed activity gateway.
func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetByBookID(ctx context.Context, bookID string) (*activity.Activity, error) {
	var model ActivityModel
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity get %s failed", bookID).WithCause(err)
	}
	return toActivity(&model), nil
}

// Put upserts on the book_id key: the unique index is the only
// consistency guarantee for racing writers (last write wins).
func (r *activityRepository) Put(ctx context.Context, record *activity.Activity) error {
	model := ActivityModel{
		BookID:        record.BookID,
		ISBN:          record.ISBN,
		Title:         record.Title,
		AccountNumber: record.AccountNumber,
		CheckOutDate:  record.CheckOutDate,
		DueDate:       record.DueDate,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"isbn", "title", "account_number", "check_out_date", "due_date"}),
	}).Create(&model).Error
	if err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "activity put %s failed", record.BookID).WithCause(err)
	}
	return nil
}

// Delete removes the record for a copy. Deleting an absent record is a
// no-op.
func (r *activityRepository) Delete(ctx context.Context, bookID string) error {
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&ActivityModel{}).Error
	if err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "activity delete %s failed", bookID).WithCause(err)
	}
	return nil
}

func (r *activityRepository) ListByISBN(ctx context.Context, isbn string) ([]*activity.Activity, error) {
	return r.list(ctx, "isbn = ?", isbn)
}

func (r *activityRepository) ListByAccount(ctx context.Context, accountNumber string) ([]*activity.Activity, error) {
	return r.list(ctx, "account_number = ?", accountNumber)
}

func (r *activityRepository) list(ctx context.Context, cond string, arg string) ([]*activity.Activity, error) {
	var models []ActivityModel
	if err := r.db.WithContext(ctx).Where(cond, arg).Find(&models).Error; err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "activity list failed").WithCause(err)
	}
	records := make([]*activity.Activity, len(models))
	for i := range models {
		records[i] = toActivity(&models[i])
	}
	return records, nil
}

func toActivity(model *ActivityModel) *activity.Activity {
	return &activity.Activity{
		BookID:        model.BookID,
		ISBN:          model.ISBN,
		Title:         model.Title,
		AccountNumber: model.AccountNumber,
		CheckOutDate:  model.CheckOutDate,
		DueDate:       model.DueDate,
	}
}
