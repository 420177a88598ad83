package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/loudent/library/internal/domain/catalog"
	apperrors "github.com/loudent/library/pkg/errors"
)

// scanBatchSize is the COUNT hint passed to SCAN.
const scanBatchSize = 100

// catalogRecord is the stored shape of a catalog entry.
type catalogRecord struct {
	ISBN            string   `json:"isbn"`
	Title           string   `json:"title"`
	AuthorFirstName string   `json:"author_first_name"`
	AuthorLastName  string   `json:"author_last_name"`
	BookIDs         []string `json:"book_ids"`
}

type catalogRepository struct {
	client *redis.Client
}

// NewCatalogRepository creates the Redis-backed catalog gateway.
func NewCatalogRepository(client *redis.Client) catalog.Repository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) GetByISBN(ctx context.Context, isbn string) (*catalog.Entry, error) {
	raw, err := r.client.Get(ctx, catalogKey(isbn)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog get %s failed", isbn).WithCause(err)
	}
	return decodeCatalog([]byte(raw))
}

func (r *catalogRepository) FindByTitle(ctx context.Context, title string) (*catalog.Entry, error) {
	var found *catalog.Entry
	err := r.scanEntries(ctx, func(entry *catalog.Entry) bool {
		if entry.Title == title {
			found = entry
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *catalogRepository) Search(ctx context.Context, q catalog.Query) ([]*catalog.Entry, error) {
	var results []*catalog.Entry
	err := r.scanEntries(ctx, func(entry *catalog.Entry) bool {
		if q.Matches(entry) {
			results = append(results, entry)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// scanEntries walks every catalog key and feeds the decoded entries to
// visit until it returns false. Entries that fail to decode are skipped;
// a corrupt record must not blind the whole catalog.
func (r *catalogRepository) scanEntries(ctx context.Context, visit func(*catalog.Entry) bool) error {
	iter := r.client.Scan(ctx, 0, catalogKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		raw, err := r.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return apperrors.Newf(apperrors.ErrCodeStoreError, "catalog scan failed").WithCause(err)
		}

		entry, err := decodeCatalog([]byte(raw))
		if err != nil {
			continue
		}
		if !visit(entry) {
			return nil
		}
	}
	if err := iter.Err(); err != nil {
		return apperrors.Newf(apperrors.ErrCodeStoreError, "catalog scan failed").WithCause(err)
	}
	return nil
}

func decodeCatalog(raw []byte) (*catalog.Entry, error) {
	var rec catalogRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeStoreError, "catalog record corrupt").WithCause(err)
	}
	return &catalog.Entry{
		ISBN:            rec.ISBN,
		Title:           rec.Title,
		AuthorFirstName: rec.AuthorFirstName,
		AuthorLastName:  rec.AuthorLastName,
		BookIDs:         rec.BookIDs,
	}, nil
}
