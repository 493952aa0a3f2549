package storage

import (
	"context"
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
)

// Status returns aggregate counts. Each count is its own query.
// Room counts ignore the owning building's active flag.
func (d *DB) Status(ctx context.Context) (*facility.Summary, error) {
	s := &facility.Summary{DBPath: d.path}

	counts := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&s.ActiveBuildings, "SELECT COUNT(*) FROM buildings WHERE active = 1", nil},
		{&s.TotalRooms, "SELECT COUNT(*) FROM rooms", nil},
		{&s.AvailableRooms, "SELECT COUNT(*) FROM rooms WHERE status = ?", []any{facility.StatusAvailable}},
		{&s.TotalAssets, "SELECT COUNT(*) FROM assets", nil},
	}
	for _, c := range counts {
		n, err := d.countRows(ctx, c.query, c.args...)
		if err != nil {
			return nil, fmt.Errorf("counting (%s): %w", c.query, err)
		}
		*c.dst = n
	}
	return s, nil
}

// Export returns every building, room, and asset. Unlike ListBuildings,
// inactive buildings are included.
func (d *DB) Export(ctx context.Context) (*facility.Export, error) {
	buildings, err := d.allBuildings(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := d.ListRooms(ctx, "")
	if err != nil {
		return nil, err
	}
	assets, err := d.ListAssets(ctx, 0)
	if err != nil {
		return nil, err
	}

	return &facility.Export{
		Buildings:  buildings,
		Rooms:      rooms,
		Assets:     assets,
		ExportedAt: facility.Now(),
	}, nil
}
