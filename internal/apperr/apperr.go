// Package apperr defines the request-level error taxonomy. Services return
// these sentinels (usually wrapped) and the handler layer maps them to HTTP
// statuses in exactly one place.
package apperr

import "errors"

var (
	// ErrUnauthenticated means the request carried no usable identity.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound means the id resolved to no record. Checked before
	// ownership so the two failures stay distinct.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized means the record exists but the access predicate
	// rejected the actor.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrValidation means malformed input; the request never reached the
	// predicate or the storage layer.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate means a uniqueness constraint (user email) was violated.
	ErrDuplicate = errors.New("already exists")
)

func IsNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsNotAuthorized(err error) bool { return errors.Is(err, ErrNotAuthorized) }
