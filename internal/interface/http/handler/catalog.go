package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/loudent/library/internal/application/catalog"
	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/internal/interface/http/dto"
	apperrors "github.com/loudent/library/pkg/errors"
	"github.com/loudent/library/pkg/response"
)

// CatalogHandler serves catalog lookups and search.
type CatalogHandler struct {
	getBook        *appcatalog.GetBookUseCase
	getBookByTitle *appcatalog.GetBookByTitleUseCase
	searchCatalog  *appcatalog.SearchCatalogUseCase
}

func NewCatalogHandler(
	getBook *appcatalog.GetBookUseCase,
	getBookByTitle *appcatalog.GetBookByTitleUseCase,
	searchCatalog *appcatalog.SearchCatalogUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		getBook:        getBook,
		getBookByTitle: getBookByTitle,
		searchCatalog:  searchCatalog,
	}
}

// GetBook returns one title with availability.
// @Summary      Get book by ISBN
// @Description  Fetches a catalog entry and derives copy availability from active checkouts
// @Tags         catalog
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookDetailsResponse}
// @Failure      404 {object} response.Response "unknown ISBN"
// @Failure      408 {object} response.Response "deadline exceeded"
// @Router       /api/v1/catalog/{isbn} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	details, err := h.getBook.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookDetails(details))
}

// GetBookByTitle resolves a title to its catalog entry.
// @Summary      Get book by title
// @Description  Scans the catalog for the first entry with an exactly matching title
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.GetBookByTitleRequest true "title"
// @Success      200 {object} response.Response{data=dto.BookDetailsResponse}
// @Failure      404 {object} response.Response "unknown title"
// @Router       /api/v1/catalog/title [post]
func (h *CatalogHandler) GetBookByTitle(c *gin.Context) {
	var req dto.GetBookByTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request body: "+err.Error())
		return
	}

	details, err := h.getBookByTitle.Execute(c.Request.Context(), req.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookDetails(details))
}

// SearchCatalog lists entries matching the author query.
// @Summary      Search the catalog
// @Description  Returns all entries matching the query; an empty query returns the whole catalog
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchCatalogRequest true "query"
// @Success      200 {object} response.Response{data=[]dto.BookDetailsResponse}
// @Router       /api/v1/catalog/search [post]
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	var req dto.SearchCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request body: "+err.Error())
		return
	}

	results, err := h.searchCatalog.Execute(c.Request.Context(), catalog.Query{
		AuthorFirstName: req.AuthorFirstName,
		AuthorLastName:  req.AuthorLastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.BookDetailsResponse, len(results))
	for i, details := range results {
		list[i] = toBookDetails(details)
	}
	response.Success(c, list)
}

func toBookDetails(details *catalog.Details) *dto.BookDetailsResponse {
	return &dto.BookDetailsResponse{
		ISBN:            details.ISBN,
		Title:           details.Title,
		AuthorFirstName: details.AuthorFirstName,
		AuthorLastName:  details.AuthorLastName,
		TotalCopies:     details.TotalCopies,
		AvailableCopies: details.AvailableCopies,
	}
}
