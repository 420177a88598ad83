package account

import "time"

// Account is one member account, identified by account number. Accounts
// are read-only inputs to this service; provisioning is out of scope.
type Account struct {
	AccountNumber string
	FirstName     string
	LastName      string
	MemberSince   time.Time
}

// Loan is one book currently borrowed by an account, joined from the
// activity records.
type Loan struct {
	BookID       string
	Title        string
	CheckOutDate time.Time
	DueDate      time.Time
}

// Profile is an Account enriched with its outstanding loans.
type Profile struct {
	Account
	BorrowedBooks []Loan
}
