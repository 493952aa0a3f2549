package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/blackroad/facilities/internal/facility"
)

// seedBuildings registers buildings with default fields.
func seedBuildings(t *testing.T, db *DB, names ...string) []facility.Building {
	t.Helper()

	var out []facility.Building
	for _, name := range names {
		b, err := db.AddBuilding(context.Background(), facility.NewBuilding{Name: name, Floors: 1, Type: "office"})
		if err != nil {
			t.Fatalf("AddBuilding(%s) error = %v", name, err)
		}
		out = append(out, *b)
	}
	return out
}

func TestAddRoom_BuildingNotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.AddRoom(ctx, facility.NewRoom{BuildingName: "Nowhere", Name: "101", Floor: 1, Capacity: 10})
	if !errors.Is(err, facility.ErrNotFound) {
		t.Fatalf("AddRoom() error = %v, want ErrNotFound", err)
	}
	if got, want := err.Error(), "Building 'Nowhere' not found"; got != want {
		t.Errorf("AddRoom() error = %q, want %q", got, want)
	}

	n, err := db.countRows(ctx, "SELECT COUNT(*) FROM rooms")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rooms = %d, want 0", n)
	}
}

func TestAddRoom_ListByBuilding(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	buildings := seedBuildings(t, db, "HQ", "Annex")

	r, err := db.AddRoom(ctx, facility.NewRoom{BuildingName: "HQ", Name: "Room 101", Floor: 1, Capacity: 20, Type: "meeting"})
	if err != nil {
		t.Fatalf("AddRoom() error = %v", err)
	}
	if r.BuildingID != buildings[0].ID {
		t.Errorf("r.BuildingID = %d, want %d", r.BuildingID, buildings[0].ID)
	}
	if r.Status != facility.StatusAvailable {
		t.Errorf("r.Status = %q, want %q", r.Status, facility.StatusAvailable)
	}
	if _, err := db.AddRoom(ctx, facility.NewRoom{BuildingName: "Annex", Name: "Lobby", Floor: 1, Capacity: 5}); err != nil {
		t.Fatalf("AddRoom(Annex) error = %v", err)
	}

	rooms, err := db.ListRooms(ctx, "HQ")
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("ListRooms(HQ) len = %d, want 1", len(rooms))
	}
	if rooms[0] != *r {
		t.Errorf("ListRooms(HQ)[0] = %+v, want %+v", rooms[0], *r)
	}
}

func TestListRooms_UnknownBuilding(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	seedBuildings(t, db, "HQ")
	if _, err := db.AddRoom(ctx, facility.NewRoom{BuildingName: "HQ", Name: "101", Floor: 1, Capacity: 10}); err != nil {
		t.Fatal(err)
	}

	rooms, err := db.ListRooms(ctx, "Ghost")
	if err != nil {
		t.Fatalf("ListRooms() error = %v, want nil", err)
	}
	if rooms == nil || len(rooms) != 0 {
		t.Errorf("ListRooms(Ghost) = %#v, want empty non-nil slice", rooms)
	}
}

func TestListRooms_All(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	seedBuildings(t, db, "HQ", "Annex")

	for _, nr := range []facility.NewRoom{
		{BuildingName: "HQ", Name: "101", Floor: 1, Capacity: 10},
		{BuildingName: "Annex", Name: "A1", Floor: 1, Capacity: 10},
		{BuildingName: "HQ", Name: "201", Floor: 2, Capacity: 10},
	} {
		if _, err := db.AddRoom(ctx, nr); err != nil {
			t.Fatalf("AddRoom(%s) error = %v", nr.Name, err)
		}
	}

	rooms, err := db.ListRooms(ctx, "")
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	want := []string{"101", "A1", "201"}
	if len(rooms) != len(want) {
		t.Fatalf("ListRooms() len = %d, want %d", len(rooms), len(want))
	}
	for i, name := range want {
		if rooms[i].Name != name {
			t.Errorf("rooms[%d].Name = %q, want %q", i, rooms[i].Name, name)
		}
	}
}

func TestGetRoom(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	seedBuildings(t, db, "HQ")

	r, err := db.AddRoom(ctx, facility.NewRoom{BuildingName: "HQ", Name: "101", Floor: 3, Capacity: 12, Type: "lab"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.GetRoom(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if got == nil || *got != *r {
		t.Errorf("GetRoom() = %+v, want %+v", got, r)
	}

	got, err = db.GetRoom(ctx, r.ID+100)
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetRoom(missing) = %+v, want nil", got)
	}
}
