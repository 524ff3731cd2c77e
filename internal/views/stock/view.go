// Package stock is the inventory surface: single-SKU lookup plus the
// filtered warehouse-wide listing.
package stock

import (
	"context"
	"io"
	"sync"

	"panel/internal/entities"
)

type View struct {
	mu      sync.Mutex
	svc     Service
	report  *entities.StockReport
	listing *entities.StockListing
	filter  entities.StockFilter
	closed  bool
}

func New(svc Service) *View {
	return &View{svc: svc}
}

// Lookup fetches the per-warehouse inventory of one SKU and keeps the report
// for rendering and export.
func (v *View) Lookup(ctx context.Context, sku string) (*entities.StockReport, error) {
	report, err := v.svc.Lookup(ctx, sku)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if !v.closed {
		v.report = report
	}
	v.mu.Unlock()
	return report, nil
}

// Reload fetches the listing for the current filter.
func (v *View) Reload(ctx context.Context) error {
	v.mu.Lock()
	filter := v.filter
	v.mu.Unlock()

	listing, err := v.svc.Listing(ctx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if err != nil {
		return err
	}
	v.listing = listing
	return nil
}

// SetFilter replaces the listing filter; the caller reloads afterwards.
func (v *View) SetFilter(filter entities.StockFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
}

// ExportCSV writes the last lookup report as CSV.
func (v *View) ExportCSV(w io.Writer) error {
	v.mu.Lock()
	report := v.report
	v.mu.Unlock()

	if report == nil {
		return nil
	}
	return v.svc.ExportCSV(report, w)
}

func (v *View) Report() (entities.StockReport, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.report == nil {
		return entities.StockReport{}, false
	}
	return *v.report, true
}

func (v *View) Listing() (entities.StockListing, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.listing == nil {
		return entities.StockListing{}, false
	}
	return *v.listing, true
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.report = nil
	v.listing = nil
}
