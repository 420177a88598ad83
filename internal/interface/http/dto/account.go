package dto

// LoanResponse is one outstanding loan on a member profile.
type LoanResponse struct {
	BookID       string `json:"book_id" example:"978-0060853976.1"`
	Title        string `json:"title,omitempty" example:"Good Omens"`
	CheckOutDate string `json:"check_out_date,omitempty" example:"2024-01-15"`
	DueDate      string `json:"due_date,omitempty" example:"2024-02-05"`
}

// AccountResponse is a member profile with its outstanding loans.
type AccountResponse struct {
	AccountNumber string         `json:"account_number" example:"12345"`
	FirstName     string         `json:"first_name" example:"Ada"`
	LastName      string         `json:"last_name" example:"Lovelace"`
	MemberSince   string         `json:"member_since" example:"2019-03-01"`
	BorrowedBooks []LoanResponse `json:"borrowed_books"`
}
