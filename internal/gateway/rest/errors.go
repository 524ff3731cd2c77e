package rest

import (
	"errors"
	"fmt"
)

// TransportError is any non-2xx HTTP outcome. It carries the numeric status
// and the raw response text so surfaces can render the server's message.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is a TransportError with the given status.
func IsStatus(err error, status int) bool {
	var terr *TransportError
	return errors.As(err, &terr) && terr.StatusCode == status
}
