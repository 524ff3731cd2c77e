package incident

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidIncidentType   = errors.New("invalid incident type")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrForbidden             = errors.New("operation not permitted for role")
	ErrConfirmationDeclined  = errors.New("confirmation declined")
)
