package catalog

import (
	"context"
	"fmt"

	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/pkg/dispatch"
)

// GetBookByTitleUseCase resolves a catalog entry by its exact title.
// Titles carry no store index, so the lookup is a filtered scan.
type GetBookByTitleUseCase struct {
	dispatcher *dispatch.Dispatcher
	catalogs   catalog.Service
}

func NewGetBookByTitleUseCase(d *dispatch.Dispatcher, catalogs catalog.Service) *GetBookByTitleUseCase {
	return &GetBookByTitleUseCase{dispatcher: d, catalogs: catalogs}
}

func (uc *GetBookByTitleUseCase) Execute(ctx context.Context, title string) (*catalog.Details, error) {
	return dispatch.Lookup(uc.dispatcher, ctx, "getBookByTitle",
		fmt.Sprintf("Book not found for title: %s", title),
		func(ctx context.Context) (*catalog.Details, error) {
			return uc.catalogs.GetByTitle(ctx, title)
		})
}
