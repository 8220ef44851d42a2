package domain

import "fmt"

// ValidationError reports a malformed event or request. It is returned
// synchronously; nothing has been written when it occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a recipe id with no corresponding catalog record.
type NotFoundError struct {
	RecipeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe not found: %s", e.RecipeID)
}

// StorageError reports a failed durable append. A dropped event would
// corrupt the audit trail recommendations are derived from, so it is
// surfaced to the caller rather than swallowed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
