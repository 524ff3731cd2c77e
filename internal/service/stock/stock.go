// Package stock answers SKU availability questions. The whole surface is
// restricted to roles that carry the stock capability.
package stock

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"panel/internal/authz"
	"panel/internal/entities"
)

type Stock struct {
	gateway  Gateway
	sessions Sessions
}

func New(gateway Gateway, sessions Sessions) *Stock {
	return &Stock{gateway: gateway, sessions: sessions}
}

// Lookup reports the per-warehouse inventory of one SKU.
func (s *Stock) Lookup(ctx context.Context, sku string) (*entities.StockReport, error) {
	if err := s.require(); err != nil {
		return nil, err
	}

	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrMissingSKU
	}

	report, err := s.gateway.Lookup(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("stock lookup %q: %w", sku, err)
	}
	return report, nil
}

// Listing fetches the filtered warehouse-wide inventory.
func (s *Stock) Listing(ctx context.Context, filter entities.StockFilter) (*entities.StockListing, error) {
	if err := s.require(); err != nil {
		return nil, err
	}

	listing, err := s.gateway.Listing(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("stock listing: %w", err)
	}
	return listing, nil
}

// ExportCSV renders a lookup report as CSV.
func (s *Stock) ExportCSV(report *entities.StockReport, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"sku", "bodega", "stock", "min_stock", "estado"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, lvl := range report.Inventory {
		record := []string{
			report.SKU,
			lvl.Warehouse,
			strconv.FormatInt(lvl.Stock, 10),
			strconv.FormatInt(lvl.MinStock, 10),
			lvl.State.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *Stock) require() error {
	session, ok := s.sessions.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if !authz.Capabilities(session.User.Role).Has(authz.CapViewStock) {
		return ErrForbidden
	}
	return nil
}
