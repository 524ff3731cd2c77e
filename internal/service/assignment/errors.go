package assignment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrForbidden             = errors.New("operation not permitted for role")
	ErrConfirmationDeclined  = errors.New("confirmation declined")
)
