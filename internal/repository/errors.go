package repository

import "errors"

// ErrNotFound is wrapped with the entity name when a lookup, update or
// delete matches no row.
var ErrNotFound = errors.New("not found")
