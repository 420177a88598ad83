package catalog

import (
	"context"
)

// Repository is the store gateway for catalog records. Absence is a
// result, not an error: Get-style lookups return (nil, nil) when no entry
// exists, and a non-nil error only for store failures. Conversion of
// absence into a NotFound error happens at the dispatcher edge.
type Repository interface {
	// GetByISBN fetches one entry by its key.
	GetByISBN(ctx context.Context, isbn string) (*Entry, error)

	// FindByTitle scans for the first entry with an exactly matching
	// title. Titles carry no index in the store, so this is a filtered
	// scan by contract.
	FindByTitle(ctx context.Context, title string) (*Entry, error)

	// Search scans for all entries matching the query. An empty query
	// returns every entry.
	Search(ctx context.Context, q Query) ([]*Entry, error)
}

// LoanCounter reports how many copies of a title are currently checked
// out. Implemented by the activity store; declared here so the catalog
// service does not depend on the activity package.
type LoanCounter interface {
	ActiveLoansByISBN(ctx context.Context, isbn string) (int, error)
}
