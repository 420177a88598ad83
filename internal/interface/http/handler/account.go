package handler

import (
	"github.com/gin-gonic/gin"

	appaccount "github.com/loudent/library/internal/application/account"
	"github.com/loudent/library/internal/interface/http/dto"
	"github.com/loudent/library/pkg/response"
)

// AccountHandler serves member profile lookups.
type AccountHandler struct {
	getAccount *appaccount.GetAccountUseCase
}

func NewAccountHandler(getAccount *appaccount.GetAccountUseCase) *AccountHandler {
	return &AccountHandler{getAccount: getAccount}
}

// GetAccount returns a member profile with its outstanding loans.
// @Summary      Get account
// @Description  Fetches a member account enriched with the borrowed-book list
// @Tags         accounts
// @Produce      json
// @Param        accountNumber path string true "account number"
// @Success      200 {object} response.Response{data=dto.AccountResponse}
// @Failure      404 {object} response.Response "unknown account"
// @Failure      408 {object} response.Response "deadline exceeded"
// @Router       /api/v1/accounts/{accountNumber} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	profile, err := h.getAccount.Execute(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	loans := make([]dto.LoanResponse, len(profile.BorrowedBooks))
	for i, loan := range profile.BorrowedBooks {
		loans[i] = dto.LoanResponse{
			BookID:       loan.BookID,
			Title:        loan.Title,
			CheckOutDate: dto.FormatDate(loan.CheckOutDate),
			DueDate:      dto.FormatDate(loan.DueDate),
		}
	}

	response.Success(c, &dto.AccountResponse{
		AccountNumber: profile.AccountNumber,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		MemberSince:   dto.FormatDate(profile.MemberSince),
		BorrowedBooks: loans,
	})
}
