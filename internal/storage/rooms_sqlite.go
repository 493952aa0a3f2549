package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
	"go.uber.org/zap"
)

const selectRoomFields = `id, building_id, name, floor, capacity, room_type, status, created_at`

// AddRoom adds a room to the building with the given name.
// Returns a *facility.NotFoundError if the building does not exist.
func (d *DB) AddRoom(ctx context.Context, nr facility.NewRoom) (*facility.Room, error) {
	if err := nr.Validate(); err != nil {
		return nil, err
	}

	b, err := d.GetBuildingByName(ctx, nr.BuildingName)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, facility.BuildingNotFound(nr.BuildingName)
	}

	now := facility.Now()
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO rooms (building_id, name, floor, capacity, room_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, nr.Name, nr.Floor, nr.Capacity, nr.Type, now)
	if err != nil {
		return nil, fmt.Errorf("inserting room %q: %w", nr.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading room id: %w", err)
	}
	d.logger.Debug("room inserted", zap.Int64("id", id), zap.Int64("building_id", b.ID))

	return &facility.Room{
		ID:         id,
		BuildingID: b.ID,
		Name:       nr.Name,
		Floor:      nr.Floor,
		Capacity:   nr.Capacity,
		Type:       nr.Type,
		Status:     facility.StatusAvailable,
		CreatedAt:  now,
	}, nil
}

// GetRoom retrieves a room by id.
// Returns nil, nil if the room does not exist.
func (d *DB) GetRoom(ctx context.Context, id int64) (*facility.Room, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+selectRoomFields+` FROM rooms WHERE id = ?`, id)
	r, err := scanRoom(row)
	if err != nil {
		return nil, fmt.Errorf("looking up room %d: %w", id, err)
	}
	return r, nil
}

// ListRooms returns the rooms of the named building, or every room when
// buildingName is empty. An unknown building yields an empty slice.
func (d *DB) ListRooms(ctx context.Context, buildingName string) ([]facility.Room, error) {
	if buildingName == "" {
		return d.queryRooms(ctx, `SELECT `+selectRoomFields+` FROM rooms ORDER BY id`)
	}

	b, err := d.GetBuildingByName(ctx, buildingName)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []facility.Room{}, nil
	}
	return d.queryRooms(ctx, `SELECT `+selectRoomFields+` FROM rooms WHERE building_id = ? ORDER BY id`, b.ID)
}

func (d *DB) queryRooms(ctx context.Context, query string, args ...any) ([]facility.Room, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []facility.Room{}
	for rows.Next() {
		var f roomScanFields
		if err := rows.Scan(f.targets()...); err != nil {
			return nil, fmt.Errorf("scanning room row: %w", err)
		}
		rooms = append(rooms, f.toRoom())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}
	return rooms, nil
}

// roomScanFields holds the scan targets for a room row.
type roomScanFields struct {
	id, buildingID   int64
	name, createdAt  string
	floor, capacity  sql.NullInt64
	roomType, status sql.NullString
}

// targets returns scan destinations in selectRoomFields order.
func (f *roomScanFields) targets() []any {
	return []any{&f.id, &f.buildingID, &f.name, &f.floor, &f.capacity, &f.roomType, &f.status, &f.createdAt}
}

func (f *roomScanFields) toRoom() facility.Room {
	return facility.Room{
		ID:         f.id,
		BuildingID: f.buildingID,
		Name:       f.name,
		Floor:      int(f.floor.Int64),
		Capacity:   int(f.capacity.Int64),
		Type:       f.roomType.String,
		Status:     f.status.String,
		CreatedAt:  f.createdAt,
	}
}

func scanRoom(row *sql.Row) (*facility.Room, error) {
	var f roomScanFields
	if err := row.Scan(f.targets()...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	r := f.toRoom()
	return &r, nil
}
