package storage

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/blackroad/facilities/internal/facility"
)

func TestAddBuilding_ThenList(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	b, err := db.AddBuilding(ctx, facility.NewBuilding{
		Name:    "HQ",
		Address: "1 Main St",
		Floors:  5,
		Sqft:    12500,
		Type:    "office",
	})
	if err != nil {
		t.Fatalf("AddBuilding() error = %v", err)
	}
	if b.ID <= 0 {
		t.Errorf("b.ID = %d, want > 0", b.ID)
	}
	if !b.Active {
		t.Error("b.Active = false, want true")
	}
	if _, err := time.ParseInLocation(facility.TimestampLayout, b.CreatedAt, time.Local); err != nil {
		t.Errorf("b.CreatedAt = %q does not parse: %v", b.CreatedAt, err)
	}

	buildings, err := db.ListBuildings(ctx)
	if err != nil {
		t.Fatalf("ListBuildings() error = %v", err)
	}
	if len(buildings) != 1 {
		t.Fatalf("ListBuildings() len = %d, want 1", len(buildings))
	}
	if buildings[0] != *b {
		t.Errorf("ListBuildings()[0] = %+v, want %+v", buildings[0], *b)
	}
}

func TestAddBuilding_Duplicate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	nb := facility.NewBuilding{Name: "HQ", Floors: 1, Type: "office"}
	if _, err := db.AddBuilding(ctx, nb); err != nil {
		t.Fatalf("AddBuilding() first error = %v", err)
	}

	nb.Address = "somewhere else"
	_, err := db.AddBuilding(ctx, nb)
	if err == nil {
		t.Fatal("AddBuilding() duplicate error = nil, want error")
	}
	if !errors.Is(err, facility.ErrDuplicateBuilding) {
		t.Errorf("AddBuilding() duplicate error = %v, want ErrDuplicateBuilding", err)
	}

	n, err := db.countRows(ctx, "SELECT COUNT(*) FROM buildings WHERE name = ?", "HQ")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("buildings named HQ = %d, want 1", n)
	}
}

func TestAddBuilding_Invalid(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	tests := []struct {
		name string
		nb   facility.NewBuilding
	}{
		{"empty name", facility.NewBuilding{Floors: 1}},
		{"zero floors", facility.NewBuilding{Name: "HQ", Floors: 0}},
		{"negative sqft", facility.NewBuilding{Name: "HQ", Floors: 1, Sqft: -1}},
		{"infinite sqft", facility.NewBuilding{Name: "HQ", Floors: 1, Sqft: math.Inf(1)}},
		{"negative infinite sqft", facility.NewBuilding{Name: "HQ", Floors: 1, Sqft: math.Inf(-1)}},
		{"NaN sqft", facility.NewBuilding{Name: "HQ", Floors: 1, Sqft: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.AddBuilding(ctx, tt.nb)
			if !errors.Is(err, facility.ErrInvalid) {
				t.Errorf("AddBuilding() error = %v, want ErrInvalid", err)
			}
		})
	}

	n, err := db.countRows(ctx, "SELECT COUNT(*) FROM buildings")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("buildings = %d, want 0", n)
	}
}

func TestListBuildings_ExcludesInactive(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for _, name := range []string{"North", "South", "East"} {
		if _, err := db.AddBuilding(ctx, facility.NewBuilding{Name: name, Floors: 1}); err != nil {
			t.Fatalf("AddBuilding(%s) error = %v", name, err)
		}
	}
	// No deactivation operation exists; flip the flag directly.
	if _, err := db.db.ExecContext(ctx, "UPDATE buildings SET active = 0 WHERE name = 'South'"); err != nil {
		t.Fatal(err)
	}

	buildings, err := db.ListBuildings(ctx)
	if err != nil {
		t.Fatalf("ListBuildings() error = %v", err)
	}
	var names []string
	for _, b := range buildings {
		names = append(names, b.Name)
	}
	if len(names) != 2 || names[0] != "North" || names[1] != "East" {
		t.Errorf("ListBuildings() names = %v, want [North East]", names)
	}

	// An inactive building still owns its name.
	if _, err := db.AddBuilding(ctx, facility.NewBuilding{Name: "South", Floors: 1}); !errors.Is(err, facility.ErrDuplicateBuilding) {
		t.Errorf("AddBuilding(South) error = %v, want ErrDuplicateBuilding", err)
	}
}

func TestGetBuildingByName(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if _, err := db.AddBuilding(ctx, facility.NewBuilding{Name: "HQ", Floors: 2}); err != nil {
		t.Fatal(err)
	}

	b, err := db.GetBuildingByName(ctx, "HQ")
	if err != nil {
		t.Fatalf("GetBuildingByName() error = %v", err)
	}
	if b == nil || b.Floors != 2 {
		t.Errorf("GetBuildingByName() = %+v", b)
	}

	// Exact match only.
	b, err = db.GetBuildingByName(ctx, "hq")
	if err != nil {
		t.Fatalf("GetBuildingByName() error = %v", err)
	}
	if b != nil {
		t.Errorf("GetBuildingByName(hq) = %+v, want nil", b)
	}
}

func TestBuildingIDsNotReused(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	first, err := db.AddBuilding(ctx, facility.NewBuilding{Name: "A", Floors: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.db.ExecContext(ctx, "DELETE FROM buildings WHERE id = ?", first.ID); err != nil {
		t.Fatal(err)
	}
	second, err := db.AddBuilding(ctx, facility.NewBuilding{Name: "B", Floors: 1})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID <= first.ID {
		t.Errorf("second.ID = %d, want > %d", second.ID, first.ID)
	}
}
