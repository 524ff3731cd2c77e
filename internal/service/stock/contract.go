//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_test
package stock

import (
	"context"

	"panel/internal/entities"
)

type Gateway interface {
	Lookup(ctx context.Context, sku string) (*entities.StockReport, error)
	Listing(ctx context.Context, filter entities.StockFilter) (*entities.StockListing, error)
}

type Sessions interface {
	Current() (entities.Session, bool)
}
