package serrors

import (
	"errors"
	"net/http"
)

// KindOf returns the semantic kind carried anywhere in err's chain, or nil
// when err is not a semantic error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}

	return nil
}

// HTTPStatus maps a semantic kind to the HTTP status code returned to clients.
// Unknown kinds map to 500.
func HTTPStatus(k Kind) int {
	switch k {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
