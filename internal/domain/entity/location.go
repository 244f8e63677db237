// Package entity contains the core business objects of the project.
package entity

import "time"

// LocationSource tags how a location record was obtained.
type LocationSource string

const (
	// LocationSourceCache means the record came from the key-value cache.
	LocationSourceCache LocationSource = "cache"
	// LocationSourceGPS means the record came from a live sensor read.
	LocationSourceGPS LocationSource = "gps"
	// LocationSourceDefault means the record is the configured fallback city.
	LocationSourceDefault LocationSource = "default"
)

// Coordinate is a WGS84 geographic coordinate.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies in WGS84 ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// LocationRecord is the last known device location. One active record exists
// at a time; a new sensor read replaces the previous one (last-write-wins).
type LocationRecord struct {
	Coordinate Coordinate     `json:"coordinate"`
	City       string         `json:"city,omitempty"`
	Source     LocationSource `json:"source"`
	CapturedAt time.Time      `json:"captured_at"`
}

// StaleAfter reports whether the record is older than maxAge at the given instant.
func (r *LocationRecord) StaleAfter(now time.Time, maxAge time.Duration) bool {
	return now.Sub(r.CapturedAt) > maxAge
}
