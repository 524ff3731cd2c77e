package stock

import "errors"

var (
	ErrMissingSKU       = errors.New("sku is required")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("operation not permitted for role")
)
