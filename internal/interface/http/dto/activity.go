package dto

import "time"

// CheckoutRequest is a batch checkout. Fields carry no binding tags on
// purpose: presence validation lives in the domain service so that the
// error message is identical across transports.
type CheckoutRequest struct {
	AccountNumber string   `json:"account_number" example:"12345"`
	BookIDs       []string `json:"book_ids" example:"978-0060853976.1"`
}

// CheckinRequest is a batch checkin. The borrower comes from the record,
// not the request.
type CheckinRequest struct {
	BookIDs []string `json:"book_ids" example:"978-0060853976.1"`
}

// OperationResultResponse is the per-copy outcome of a batch operation.
// Dates are calendar dates; they are omitted when the outcome carries
// none (unregistered copy, failed item).
type OperationResultResponse struct {
	BookID       string `json:"book_id" example:"978-0060853976.1"`
	Title        string `json:"title,omitempty" example:"Good Omens"`
	CheckOutDate string `json:"check_out_date,omitempty" example:"2024-01-15"`
	DueDate      string `json:"due_date,omitempty" example:"2024-02-05"`
	Note         string `json:"note" example:"Ok"`
}

// FormatDate renders a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
