// ================== pkg/errors/errors.go =================
package errors

import "errors"

// Sentinel errors shared across features. Repositories wrap these so the
// response layer can map them to HTTP status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrInternal     = errors.New("internal server error")
)
