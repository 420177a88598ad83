package activity

import "context"

// Repository is the store gateway for checkout records. GetByBookID
// returns (nil, nil) when the copy has no active record. Delete of an
// absent record is a no-op, never an error. The secondary lookups back
// the isbn and account indexes of the store.
type Repository interface {
	GetByBookID(ctx context.Context, bookID string) (*Activity, error)
	Put(ctx context.Context, record *Activity) error
	Delete(ctx context.Context, bookID string) error
	ListByISBN(ctx context.Context, isbn string) ([]*Activity, error)
	ListByAccount(ctx context.Context, accountNumber string) ([]*Activity, error)
}

// AccountChecker is the checkout precondition: the account must exist.
// Checked once per batch, not per item.
type AccountChecker interface {
	Exists(ctx context.Context, accountNumber string) bool
}
