//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_test
package stock

import (
	"context"
	"io"

	"panel/internal/entities"
)

type Service interface {
	Lookup(ctx context.Context, sku string) (*entities.StockReport, error)
	Listing(ctx context.Context, filter entities.StockFilter) (*entities.StockListing, error)
	ExportCSV(report *entities.StockReport, w io.Writer) error
}
