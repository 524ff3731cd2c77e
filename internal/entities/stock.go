package entities

type StockState string

const (
	StockOK  StockState = "OK"
	StockLow StockState = "BAJO_STOCK"
)

func (s StockState) String() string {
	return string(s)
}

// StockLevel is the inventory of one SKU in one warehouse.
type StockLevel struct {
	SKU       string
	Warehouse string
	Stock     int64
	MinStock  int64
	State     StockState
}

// StockReport is the answer to a single-SKU lookup across warehouses.
type StockReport struct {
	SKU       string
	Inventory []StockLevel
}

// TotalStock sums stock across all warehouses in the report.
func (r StockReport) TotalStock() int64 {
	var total int64
	for _, lvl := range r.Inventory {
		total += lvl.Stock
	}
	return total
}

// LowStockCount counts warehouses below their minimum.
func (r StockReport) LowStockCount() int {
	count := 0
	for _, lvl := range r.Inventory {
		if lvl.State == StockLow {
			count++
		}
	}
	return count
}

// StockFilter narrows the full listing.
type StockFilter struct {
	Warehouse string
	LowOnly   bool
	Search    string
}

// StockListing is the filtered warehouse-wide inventory view.
type StockListing struct {
	Items      []StockLevel
	TotalItems int64
	TotalStock int64
	LowItems   int64
	Warehouses []string
}
