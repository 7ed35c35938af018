package model

type CreateLocationRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=80"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	City        string  `json:"city" validate:"omitempty,max=80"`
	State       string  `json:"state" validate:"omitempty,max=60"`
	PhoneNumber string  `json:"phone_number" validate:"omitempty,max=32"`
	Address     string  `json:"address" validate:"required,max=255"`
	PlaceID     string  `json:"place_id" validate:"required,max=255"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type CreateZoneRequest struct {
	LocationID string  `json:"location_id" validate:"required,uuid4"`
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	ZoneNumber string  `json:"zone_number" validate:"required,max=32"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	IsHourly   bool    `json:"is_hourly"`
	ImageURL   string  `json:"image_url" validate:"omitempty,url"`
}

type UpdateZoneRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=255"`
	ZoneNumber *string  `json:"zone_number" validate:"omitempty,max=32"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	IsHourly   *bool    `json:"is_hourly"`
	ImageURL   *string  `json:"image_url" validate:"omitempty,url"`
}
