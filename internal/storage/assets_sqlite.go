package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
	"go.uber.org/zap"
)

const selectAssetFields = `id, room_id, name, asset_type, serial_number, purchase_date,
	condition, last_inspected, notes`

// AddAsset registers an asset in a room. The room id is stored as given
// unless na.RequireRoom is set, in which case an unknown room is rejected.
// LastInspected is set to the creation time.
func (d *DB) AddAsset(ctx context.Context, na facility.NewAsset) (*facility.Asset, error) {
	if err := na.Validate(); err != nil {
		return nil, err
	}

	if na.RequireRoom {
		r, err := d.GetRoom(ctx, na.RoomID)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, facility.RoomNotFound(na.RoomID)
		}
	}

	now := facility.Now()
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO assets (room_id, name, asset_type, serial_number, purchase_date,
			condition, last_inspected, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, na.RoomID, na.Name, na.Type, na.SerialNumber, na.PurchaseDate, na.Condition, now, na.Notes)
	if err != nil {
		return nil, fmt.Errorf("inserting asset %q: %w", na.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading asset id: %w", err)
	}
	d.logger.Debug("asset inserted", zap.Int64("id", id), zap.Int64("room_id", na.RoomID))

	return &facility.Asset{
		ID:            id,
		RoomID:        na.RoomID,
		Name:          na.Name,
		Type:          na.Type,
		SerialNumber:  na.SerialNumber,
		PurchaseDate:  na.PurchaseDate,
		Condition:     na.Condition,
		LastInspected: now,
		Notes:         na.Notes,
	}, nil
}

// ListAssets returns the assets in the given room, or every asset when roomID is 0.
func (d *DB) ListAssets(ctx context.Context, roomID int64) ([]facility.Asset, error) {
	if roomID == 0 {
		return d.queryAssets(ctx, `SELECT `+selectAssetFields+` FROM assets ORDER BY id`)
	}
	return d.queryAssets(ctx, `SELECT `+selectAssetFields+` FROM assets WHERE room_id = ? ORDER BY id`, roomID)
}

func (d *DB) queryAssets(ctx context.Context, query string, args ...any) ([]facility.Asset, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying assets: %w", err)
	}
	defer rows.Close()

	assets := []facility.Asset{}
	for rows.Next() {
		var f assetScanFields
		if err := rows.Scan(f.targets()...); err != nil {
			return nil, fmt.Errorf("scanning asset row: %w", err)
		}
		assets = append(assets, f.toAsset())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating asset rows: %w", err)
	}
	return assets, nil
}

// assetScanFields holds the scan targets for an asset row.
type assetScanFields struct {
	id, roomID int64
	name       string

	assetType, serialNumber, purchaseDate sql.NullString
	condition, lastInspected, notes       sql.NullString
}

// targets returns scan destinations in selectAssetFields order.
func (f *assetScanFields) targets() []any {
	return []any{&f.id, &f.roomID, &f.name, &f.assetType, &f.serialNumber,
		&f.purchaseDate, &f.condition, &f.lastInspected, &f.notes}
}

func (f *assetScanFields) toAsset() facility.Asset {
	return facility.Asset{
		ID:            f.id,
		RoomID:        f.roomID,
		Name:          f.name,
		Type:          f.assetType.String,
		SerialNumber:  f.serialNumber.String,
		PurchaseDate:  f.purchaseDate.String,
		Condition:     f.condition.String,
		LastInspected: f.lastInspected.String,
		Notes:         f.notes.String,
	}
}
