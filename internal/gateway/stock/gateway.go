// Package stock talks to the /stock endpoints. This part of the API never
// migrated off the Spanish field names, so the DTOs carry them directly.
package stock

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"panel/internal/entities"
)

type StockGateway struct {
	client doer
}

func New(client doer) *StockGateway {
	return &StockGateway{client: client}
}

type lookupRequest struct {
	SKU string `json:"sku"`
}

type lookupResponse struct {
	SKU        string     `json:"sku"`
	Inventario []levelDTO `json:"inventario"`
}

type levelDTO struct {
	SKU      string `json:"sku"`
	Bodega   string `json:"bodega"`
	Stock    int64  `json:"stock"`
	MinStock int64  `json:"min_stock"`
	Estado   string `json:"estado"`
}

type listingResponse struct {
	Items      []levelDTO `json:"items"`
	TotalItems int64      `json:"total_items"`
	TotalStock int64      `json:"total_stock"`
	LowItems   int64      `json:"items_bajo_stock"`
	Warehouses []string   `json:"bodegas_disponibles"`
}

// Lookup reports the per-warehouse inventory of one SKU.
func (g *StockGateway) Lookup(ctx context.Context, sku string) (*entities.StockReport, error) {
	var resp lookupResponse
	if err := g.client.Do(ctx, http.MethodPost, "/stock/consultar", lookupRequest{SKU: sku}, &resp); err != nil {
		return nil, fmt.Errorf("gateway stock, lookup %q: %w", sku, err)
	}

	report := &entities.StockReport{
		SKU:       resp.SKU,
		Inventory: make([]entities.StockLevel, 0, len(resp.Inventario)),
	}
	if report.SKU == "" {
		report.SKU = sku
	}
	for _, dto := range resp.Inventario {
		report.Inventory = append(report.Inventory, toLevel(dto))
	}
	return report, nil
}

// Listing fetches the filtered warehouse-wide inventory.
func (g *StockGateway) Listing(ctx context.Context, filter entities.StockFilter) (*entities.StockListing, error) {
	params := url.Values{}
	if filter.Warehouse != "" {
		params.Set("bodega", filter.Warehouse)
	}
	if filter.LowOnly {
		params.Set("bajo_stock", "true")
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}

	path := "/stock/listado"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp listingResponse
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("gateway stock, listing: %w", err)
	}

	listing := &entities.StockListing{
		Items:      make([]entities.StockLevel, 0, len(resp.Items)),
		TotalItems: resp.TotalItems,
		TotalStock: resp.TotalStock,
		LowItems:   resp.LowItems,
		Warehouses: resp.Warehouses,
	}
	for _, dto := range resp.Items {
		listing.Items = append(listing.Items, toLevel(dto))
	}
	return listing, nil
}

func toLevel(dto levelDTO) entities.StockLevel {
	state := entities.StockState(strings.ToUpper(dto.Estado))
	if state != entities.StockLow {
		state = entities.StockOK
	}
	return entities.StockLevel{
		SKU:       dto.SKU,
		Warehouse: dto.Bodega,
		Stock:     dto.Stock,
		MinStock:  dto.MinStock,
		State:     state,
	}
}
