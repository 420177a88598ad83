package activity

import (
	"strings"
	"time"
)

// Activity is the checkout record for one physical copy. The store keeps
// at most one record per bookId, so existence of a record means the copy
// is currently checked out; checkin deletes it.
type Activity struct {
	BookID        string
	ISBN          string
	Title         string
	AccountNumber string
	CheckOutDate  time.Time
	DueDate       time.Time
}

// OperationResult is the per-item outcome of a batch checkout or checkin.
// Exactly one is produced per requested bookId, in request order, and the
// Note carries the fixed outcome vocabulary. Date fields are zero when the
// operation did not touch a record (unregistered title, error).
type OperationResult struct {
	BookID       string
	Title        string
	CheckOutDate time.Time
	DueDate      time.Time
	Note         string
}

// ExtractISBN derives the catalog key from a copy identifier of the form
// "{isbn}.{copyIndex}". Identifiers without a separator are returned
// whole.
func ExtractISBN(bookID string) string {
	if i := strings.Index(bookID, "."); i > 0 {
		return bookID[:i]
	}
	return bookID
}
