package facility

import (
	"fmt"
	"math"
)

// NewBuilding carries the fields needed to register a building.
type NewBuilding struct {
	Name    string
	Address string
	Floors  int
	Sqft    float64
	Type    string
}

// NewRoom carries the fields needed to add a room to a named building.
type NewRoom struct {
	BuildingName string
	Name         string
	Floor        int
	Capacity     int
	Type         string
}

// NewAsset carries the fields needed to register an asset.
type NewAsset struct {
	RoomID       int64
	Name         string
	Type         string
	SerialNumber string
	PurchaseDate string
	Condition    string
	Notes        string

	// RequireRoom rejects the asset when RoomID does not name an existing room.
	// Off by default: assets may reference rooms that do not exist.
	RequireRoom bool
}

// Validate checks a building before insert.
// Name uniqueness is left to the store.
func (b *NewBuilding) Validate() error {
	if b.Name == "" {
		return invalid("building name is required")
	}
	if b.Floors < 1 {
		return invalid("floors must be at least 1, got %d", b.Floors)
	}
	if math.IsNaN(b.Sqft) || math.IsInf(b.Sqft, 0) {
		return invalid("sqft must be a finite number, got %g", b.Sqft)
	}
	if b.Sqft < 0 {
		return invalid("sqft must not be negative, got %g", b.Sqft)
	}
	return nil
}

// Validate checks a room before insert.
func (r *NewRoom) Validate() error {
	if r.Name == "" {
		return invalid("room name is required")
	}
	if r.Capacity < 1 {
		return invalid("capacity must be at least 1, got %d", r.Capacity)
	}
	return nil
}

// Validate checks an asset before insert.
func (a *NewAsset) Validate() error {
	if a.Name == "" {
		return invalid("asset name is required")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
