package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
	"go.uber.org/zap"
)

const selectBuildingFields = `id, name, address, floors, total_sqft, building_type, created_at, active`

// AddBuilding registers a building and returns the stored record.
// A duplicate name fails with an error matching facility.ErrDuplicateBuilding.
func (d *DB) AddBuilding(ctx context.Context, nb facility.NewBuilding) (*facility.Building, error) {
	if err := nb.Validate(); err != nil {
		return nil, err
	}

	now := facility.Now()
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO buildings (name, address, floors, total_sqft, building_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, nb.Name, nb.Address, nb.Floors, nb.Sqft, nb.Type, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("inserting building %q: %w: %w", nb.Name, facility.ErrDuplicateBuilding, err)
		}
		return nil, fmt.Errorf("inserting building %q: %w", nb.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading building id: %w", err)
	}
	d.logger.Debug("building inserted", zap.Int64("id", id), zap.String("name", nb.Name))

	return &facility.Building{
		ID:        id,
		Name:      nb.Name,
		Address:   nb.Address,
		Floors:    nb.Floors,
		TotalSqft: nb.Sqft,
		Type:      nb.Type,
		CreatedAt: now,
		Active:    true,
	}, nil
}

// GetBuildingByName retrieves a building by exact name.
// Returns nil, nil if no building has that name.
func (d *DB) GetBuildingByName(ctx context.Context, name string) (*facility.Building, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+selectBuildingFields+` FROM buildings WHERE name = ?`, name)
	b, err := scanBuilding(row)
	if err != nil {
		return nil, fmt.Errorf("looking up building %q: %w", name, err)
	}
	return b, nil
}

// ListBuildings returns active buildings in id order.
func (d *DB) ListBuildings(ctx context.Context) ([]facility.Building, error) {
	return d.queryBuildings(ctx, `SELECT `+selectBuildingFields+` FROM buildings WHERE active = 1 ORDER BY id`)
}

// allBuildings returns every building regardless of the active flag.
func (d *DB) allBuildings(ctx context.Context) ([]facility.Building, error) {
	return d.queryBuildings(ctx, `SELECT `+selectBuildingFields+` FROM buildings ORDER BY id`)
}

func (d *DB) queryBuildings(ctx context.Context, query string, args ...any) ([]facility.Building, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying buildings: %w", err)
	}
	defer rows.Close()

	buildings := []facility.Building{}
	for rows.Next() {
		var f buildingScanFields
		if err := rows.Scan(f.targets()...); err != nil {
			return nil, fmt.Errorf("scanning building row: %w", err)
		}
		buildings = append(buildings, f.toBuilding())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating building rows: %w", err)
	}
	return buildings, nil
}

// buildingScanFields holds the scan targets for a building row.
// Columns with a DEFAULT may still be NULL in a hand-edited store.
type buildingScanFields struct {
	id                    int64
	name                  string
	address, buildingType sql.NullString
	createdAt             string
	floors, active        sql.NullInt64
	totalSqft             sql.NullFloat64
}

// targets returns scan destinations in selectBuildingFields order.
func (f *buildingScanFields) targets() []any {
	return []any{&f.id, &f.name, &f.address, &f.floors, &f.totalSqft, &f.buildingType, &f.createdAt, &f.active}
}

func (f *buildingScanFields) toBuilding() facility.Building {
	return facility.Building{
		ID:        f.id,
		Name:      f.name,
		Address:   f.address.String,
		Floors:    int(f.floors.Int64),
		TotalSqft: f.totalSqft.Float64,
		Type:      f.buildingType.String,
		CreatedAt: f.createdAt,
		Active:    f.active.Int64 != 0,
	}
}

func scanBuilding(row *sql.Row) (*facility.Building, error) {
	var f buildingScanFields
	if err := row.Scan(f.targets()...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	b := f.toBuilding()
	return &b, nil
}
