package activity

// Outcome notes. The strings are part of the API contract; clients match
// on them verbatim.
const (
	NoteOK               = "Ok"
	NoteAlreadyCheckedIn = "Book was already checked in"
	NoteReplacedExisting = "Book was already checked out, replaced with new record"
	NoteUnregistered     = "Book is not registered in the catalog"
)

// errorNote folds a per-item failure into its outcome note.
func errorNote(err error) string {
	return "Error: " + err.Error()
}
