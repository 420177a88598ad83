package mysql

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/loudent/library/internal/domain/catalog"
	apperrors "github.com/loudent/library/pkg/errors"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates the MySQL-backed catalog gateway.
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetByISBN(ctx context.Context, isbn string) (*catalog.Entry, error) {
	var model CatalogModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog get %s failed", isbn).WithCause(err)
	}
	return toCatalogEntry(&model)
}

func (r *catalogRepository) FindByTitle(ctx context.Context, title string) (*catalog.Entry, error) {
	var model CatalogModel
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog title lookup failed").WithCause(err)
	}
	return toCatalogEntry(&model)
}

func (r *catalogRepository) Search(ctx context.Context, q catalog.Query) ([]*catalog.Entry, error) {
	query := r.db.WithContext(ctx).Model(&CatalogModel{})
	if q.AuthorFirstName != "" {
		query = query.Where("author_first_name = ?", q.AuthorFirstName)
	}
	if q.AuthorLastName != "" {
		query = query.Where("author_last_name = ?", q.AuthorLastName)
	}

	var models []CatalogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog search failed").WithCause(err)
	}

	entries := make([]*catalog.Entry, 0, len(models))
	for i := range models {
		entry, err := toCatalogEntry(&models[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toCatalogEntry(model *CatalogModel) (*catalog.Entry, error) {
	var bookIDs []string
	if model.BookIDs != "" {
		if err := json.Unmarshal([]byte(model.BookIDs), &bookIDs); err != nil {
			return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog record %s corrupt", model.ISBN).WithCause(err)
		}
	}
	return &catalog.Entry{
		ISBN:            model.ISBN,
		Title:           model.Title,
		AuthorFirstName: model.AuthorFirstName,
		AuthorLastName:  model.AuthorLastName,
		BookIDs:         bookIDs,
	}, nil
}
