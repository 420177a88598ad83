package catalog

// Entry is one catalog title, identified by ISBN. It owns the set of
// physical copies through BookIDs; each copy identifier has the form
// "{isbn}.{copyIndex}". Entries are read-only from this service's point of
// view; provisioning happens out of band.
type Entry struct {
	ISBN            string
	Title           string
	AuthorFirstName string
	AuthorLastName  string
	BookIDs         []string
}

// TotalCopies is the number of physical copies the title owns.
func (e *Entry) TotalCopies() int {
	return len(e.BookIDs)
}

// Details is an Entry enriched with availability derived from the active
// checkout records for the same ISBN.
type Details struct {
	ISBN            string
	Title           string
	AuthorFirstName string
	AuthorLastName  string
	TotalCopies     int
	AvailableCopies int
}

// Query selects catalog entries by attribute equality. Nil-equivalent
// (empty) fields match everything.
type Query struct {
	AuthorFirstName string
	AuthorLastName  string
}

// Empty reports whether the query has no conditions, in which case a
// search returns the whole catalog.
func (q Query) Empty() bool {
	return q.AuthorFirstName == "" && q.AuthorLastName == ""
}

// Matches reports whether e satisfies every set condition.
func (q Query) Matches(e *Entry) bool {
	if q.AuthorFirstName != "" && e.AuthorFirstName != q.AuthorFirstName {
		return false
	}
	if q.AuthorLastName != "" && e.AuthorLastName != q.AuthorLastName {
		return false
	}
	return true
}
