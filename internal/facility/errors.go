package facility

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers classify with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateBuilding = errors.New("building with this name already exists")
	ErrInvalid           = errors.New("invalid input")
)

// NotFoundError reports a named entity that does not exist.
type NotFoundError struct {
	Kind string // "Building", "Room"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Key)
}

// Is reports ErrNotFound so callers need not know the concrete type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BuildingNotFound returns the error for an unknown building name.
func BuildingNotFound(name string) error {
	return &NotFoundError{Kind: "Building", Key: name}
}

// RoomNotFound returns the error for an unknown room id.
func RoomNotFound(id int64) error {
	return &NotFoundError{Kind: "Room", Key: fmt.Sprintf("%d", id)}
}
