package catalog

import (
	"context"

	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/pkg/dispatch"
)

// SearchCatalogUseCase scans the catalog for entries matching the query.
// An empty query returns the whole catalog; an empty result set is a
// success, not a failure.
type SearchCatalogUseCase struct {
	dispatcher *dispatch.Dispatcher
	catalogs   catalog.Service
}

func NewSearchCatalogUseCase(d *dispatch.Dispatcher, catalogs catalog.Service) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{dispatcher: d, catalogs: catalogs}
}

func (uc *SearchCatalogUseCase) Execute(ctx context.Context, q catalog.Query) ([]*catalog.Details, error) {
	return dispatch.Do(uc.dispatcher, ctx, "searchCatalog",
		func(ctx context.Context) ([]*catalog.Details, error) {
			return uc.catalogs.Search(ctx, q)
		})
}
