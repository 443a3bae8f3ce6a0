package store

import "errors"

var (
	// ErrNotFound is returned for unknown ids.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced blocks deleting a category or floor that shops
	// still point at.
	ErrReferenced = errors.New("record still referenced by shops")
	// ErrEmailTaken rejects a registration reusing a customer email.
	ErrEmailTaken = errors.New("email already registered")
)

// RefError reports a create/update pointing a foreign key at a row that
// does not exist. Field names the offending input (category, floor,
// shopId).
type RefError struct {
	Field string
}

func (e *RefError) Error() string { return "unknown " + e.Field }
