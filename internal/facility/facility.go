// Package facility defines the core domain types for buildings, rooms, and assets.
package facility

import "time"

// TimestampLayout is the local-time ISO-8601 layout used for every stored timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Defaults applied by the CLI when a flag is omitted.
const (
	DefaultBuildingType = "office"
	DefaultFloors       = 1
	DefaultRoomType     = "office"
	DefaultRoomFloor    = 1
	DefaultCapacity     = 10
	DefaultAssetType    = "equipment"
	DefaultCondition    = "good"

	// StatusAvailable is the status every room starts with.
	StatusAvailable = "available"
)

// Conventional asset conditions. Only used for display; not enforced.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

// Building is a registered building.
type Building struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Floors    int     `json:"floors"`
	TotalSqft float64 `json:"total_sqft"`
	Type      string  `json:"building_type"`
	CreatedAt string  `json:"created_at"`
	Active    bool    `json:"active"`
}

// Room is a room inside a building.
type Room struct {
	ID         int64  `json:"id"`
	BuildingID int64  `json:"building_id"`
	Name       string `json:"name"`
	Floor      int    `json:"floor"`
	Capacity   int    `json:"capacity"`
	Type       string `json:"room_type"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// Asset is a tracked item inside a room.
// RoomID is stored as given; it is not checked against the rooms table
// unless the caller asks for it (see NewAsset.RequireRoom).
type Asset struct {
	ID            int64  `json:"id"`
	RoomID        int64  `json:"room_id"`
	Name          string `json:"name"`
	Type          string `json:"asset_type"`
	SerialNumber  string `json:"serial_number"`
	PurchaseDate  string `json:"purchase_date"`
	Condition     string `json:"condition"`
	LastInspected string `json:"last_inspected"`
	Notes         string `json:"notes"`
}

// Summary holds aggregate counts over the store.
type Summary struct {
	ActiveBuildings int    `json:"active_buildings"`
	TotalRooms      int    `json:"total_rooms"`
	AvailableRooms  int    `json:"available_rooms"`
	TotalAssets     int    `json:"total_assets"`
	DBPath          string `json:"db_path"`
}

// Export is a full dump of the store.
type Export struct {
	Buildings  []Building `json:"buildings"`
	Rooms      []Room     `json:"rooms"`
	Assets     []Asset    `json:"assets"`
	ExportedAt string     `json:"exported_at"`
}

// Now returns the current local time formatted with TimestampLayout.
func Now() string {
	return FormatTime(time.Now())
}

// FormatTime formats t in local time with TimestampLayout.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
