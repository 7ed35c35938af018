package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GeoPoint stores a WGS84 coordinate pair as plain columns so the composite
// (latitude, longitude) index can serve the radius queries. On the wire it is
// a GeoJSON Point with coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Longitude float64 `gorm:"column:longitude;not null"`
	Latitude  float64 `gorm:"column:latitude;not null"`
}

type geoJSON struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSON{
		Type:        "Point",
		Coordinates: []float64{p.Longitude, p.Latitude},
	})
}

func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var raw geoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "Point" {
		return fmt.Errorf("unsupported geometry type %q", raw.Type)
	}
	if len(raw.Coordinates) != 2 {
		return fmt.Errorf("expected 2 coordinates, got %d", len(raw.Coordinates))
	}

	p.Longitude = raw.Coordinates[0]
	p.Latitude = raw.Coordinates[1]
	return nil
}

// Valid reports whether the pair is inside WGS84 bounds.
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

type Location struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Archived    bool      `gorm:"not null;default:false" json:"-"`
	Name        string    `gorm:"size:80;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	City        string    `gorm:"size:80" json:"city,omitempty"`
	State       string    `gorm:"size:60" json:"state,omitempty"`
	PhoneNumber string    `gorm:"size:32" json:"phone_number,omitempty"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	PlaceID     string    `gorm:"size:255;not null" json:"place_id"`
	Geo         GeoPoint  `gorm:"embedded" json:"geo"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "locations"
}

type Zone struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	Archived   bool      `gorm:"not null;default:false" json:"-"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	ZoneNumber string    `gorm:"size:32;not null" json:"zone_number"`
	Price      float64   `gorm:"not null" json:"price"`
	IsHourly   bool      `gorm:"not null;default:false" json:"is_hourly"`
	ImageURL   string    `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Zone) TableName() string {
	return "zones"
}

// LocationDistance is the projected row returned by the nearest-distance
// query. Distance is in miles.
type LocationDistance struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Distance float64   `json:"distance"`
}
