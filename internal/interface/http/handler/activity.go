package handler

import (
	"github.com/gin-gonic/gin"

	appactivity "github.com/loudent/library/internal/application/activity"
	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/internal/interface/http/dto"
	apperrors "github.com/loudent/library/pkg/errors"
	"github.com/loudent/library/pkg/response"
)

// ActivityHandler serves the checkout and checkin batch operations.
type ActivityHandler struct {
	checkoutBooks *appactivity.CheckoutBooksUseCase
	checkinBooks  *appactivity.CheckinBooksUseCase
}

func NewActivityHandler(
	checkoutBooks *appactivity.CheckoutBooksUseCase,
	checkinBooks *appactivity.CheckinBooksUseCase,
) *ActivityHandler {
	return &ActivityHandler{
		checkoutBooks: checkoutBooks,
		checkinBooks:  checkinBooks,
	}
}

// CheckoutBooks checks out a batch of copies to one account.
// @Summary      Check out books
// @Description  Processes each copy independently; per-copy outcomes are reported as notes
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "account and copies"
// @Success      200 {object} response.Response{data=[]dto.OperationResultResponse}
// @Failure      400 {object} response.Response "missing arguments or unknown account"
// @Failure      408 {object} response.Response "deadline exceeded"
// @Router       /api/v1/activity/checkout [post]
func (h *ActivityHandler) CheckoutBooks(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request body: "+err.Error())
		return
	}

	results, err := h.checkoutBooks.Execute(c.Request.Context(), req.AccountNumber, req.BookIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOperationResults(results))
}

// CheckinBooks returns a batch of copies.
// @Summary      Check in books
// @Description  Processes each copy independently; a successful checkin echoes the original loan dates
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckinRequest true "copies"
// @Success      200 {object} response.Response{data=[]dto.OperationResultResponse}
// @Failure      400 {object} response.Response "missing arguments"
// @Failure      408 {object} response.Response "deadline exceeded"
// @Router       /api/v1/activity/checkin [post]
func (h *ActivityHandler) CheckinBooks(c *gin.Context) {
	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request body: "+err.Error())
		return
	}

	results, err := h.checkinBooks.Execute(c.Request.Context(), req.BookIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOperationResults(results))
}

func toOperationResults(results []activity.OperationResult) []dto.OperationResultResponse {
	list := make([]dto.OperationResultResponse, len(results))
	for i, res := range results {
		list[i] = dto.OperationResultResponse{
			BookID:       res.BookID,
			Title:        res.Title,
			CheckOutDate: dto.FormatDate(res.CheckOutDate),
			DueDate:      dto.FormatDate(res.DueDate),
			Note:         res.Note,
		}
	}
	return list
}
