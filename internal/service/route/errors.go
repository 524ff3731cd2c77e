package route

import "errors"

var (
	ErrMissingAddresses     = errors.New("origin and destination addresses are required")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrForbidden            = errors.New("operation not permitted for role")
	ErrConfirmationDeclined = errors.New("confirmation declined")
)
