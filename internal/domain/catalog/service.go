package catalog

import (
	"context"

	apperrors "github.com/loudent/library/pkg/errors"
	"github.com/loudent/library/pkg/parallel"
	"github.com/loudent/library/pkg/pool"
)

// Service exposes catalog lookups enriched with availability. Lookups
// return (nil, nil) when the entry is absent; the caller decides whether
// absence is an error.
type Service interface {
	// GetByISBN returns the enriched entry for one ISBN.
	GetByISBN(ctx context.Context, isbn string) (*Details, error)

	// GetByTitle returns the enriched entry whose title matches exactly.
	GetByTitle(ctx context.Context, title string) (*Details, error)

	// Search returns the enriched entries matching the query, enriching
	// each hit concurrently on the service pool.
	Search(ctx context.Context, q Query) ([]*Details, error)
}

type service struct {
	repo  Repository
	loans LoanCounter
	pool  *pool.Pool
}

// NewService creates the catalog service. The pool is the shared service
// pool used for per-hit availability fan-out.
func NewService(repo Repository, loans LoanCounter, p *pool.Pool) Service {
	return &service{repo: repo, loans: loans, pool: p}
}

func (s *service) GetByISBN(ctx context.Context, isbn string) (*Details, error) {
	entry, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, apperrors.Wrapf(err, "Failed to retrieve book with ISBN %s", isbn)
	}
	if entry == nil {
		return nil, nil
	}
	return s.enrich(ctx, entry)
}

func (s *service) GetByTitle(ctx context.Context, title string) (*Details, error) {
	entry, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, apperrors.Wrapf(err, "Failed to retrieve book with title %s", title)
	}
	if entry == nil {
		return nil, nil
	}
	return s.enrich(ctx, entry)
}

func (s *service) Search(ctx context.Context, q Query) ([]*Details, error) {
	entries, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to perform catalog search")
	}

	// Enrich every hit concurrently. Enrichment failure degrades to
	// "no copies available" rather than failing the whole search.
	results, err := parallel.Map(s.pool, entries, func(entry *Entry) *Details {
		details, enrichErr := s.enrich(ctx, entry)
		if enrichErr != nil {
			return &Details{
				ISBN:            entry.ISBN,
				Title:           entry.Title,
				AuthorFirstName: entry.AuthorFirstName,
				AuthorLastName:  entry.AuthorLastName,
				TotalCopies:     entry.TotalCopies(),
			}
		}
		return details
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to perform catalog search")
	}
	return results, nil
}

// enrich derives availability from the active checkout records: available
// copies = owned copies minus checked-out copies, floored at zero.
func (s *service) enrich(ctx context.Context, entry *Entry) (*Details, error) {
	checkedOut, err := s.loans.ActiveLoansByISBN(ctx, entry.ISBN)
	if err != nil {
		return nil, apperrors.Wrapf(err, "Failed to count checkouts for ISBN %s", entry.ISBN)
	}

	total := entry.TotalCopies()
	available := total - checkedOut
	if available < 0 {
		available = 0
	}

	return &Details{
		ISBN:            entry.ISBN,
		Title:           entry.Title,
		AuthorFirstName: entry.AuthorFirstName,
		AuthorLastName:  entry.AuthorLastName,
		TotalCopies:     total,
		AvailableCopies: available,
	}, nil
}
