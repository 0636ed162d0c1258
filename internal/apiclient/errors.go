package apiclient

import "errors"

// Sentinel errors mapped from HTTP statuses of the API. Callers match
// against them with [errors.Is]; the response body is attached as wrapped
// detail.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
