package catalog

import (
	"context"
	"fmt"

	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/pkg/dispatch"
)

// GetBookUseCase looks up a single catalog entry by ISBN and enriches it
// with availability.
type GetBookUseCase struct {
	dispatcher *dispatch.Dispatcher
	catalogs   catalog.Service
}

func NewGetBookUseCase(d *dispatch.Dispatcher, catalogs catalog.Service) *GetBookUseCase {
	return &GetBookUseCase{dispatcher: d, catalogs: catalogs}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, isbn string) (*catalog.Details, error) {
	return dispatch.Lookup(uc.dispatcher, ctx, "getBook",
		fmt.Sprintf("Book not found for ISBN: %s", isbn),
		func(ctx context.Context) (*catalog.Details, error) {
			return uc.catalogs.GetByISBN(ctx, isbn)
		})
}
