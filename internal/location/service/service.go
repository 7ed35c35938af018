package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"opos-parking/internal/location/model"
	"opos-parking/internal/location/repository"
	"opos-parking/internal/location/validator"
	"opos-parking/internal/query"
	usermodel "opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

// locationColumns is the filter/sort/projection allow-list for location
// listings. Anything outside it never reaches SQL.
var locationColumns = []string{
	"name", "city", "state", "address", "place_id", "user_id",
	"created_at", "updated_at",
}

type LocationService struct {
	locations *repository.LocationRepository
	zones     *repository.ZoneRepository
}

func NewService(locations *repository.LocationRepository, zones *repository.ZoneRepository) *LocationService {
	return &LocationService{locations: locations, zones: zones}
}

func (s *LocationService) ListLocations(ctx context.Context, values url.Values) ([]model.Location, error) {
	spec := query.Parse(values, locationColumns)
	return s.locations.ListLocations(ctx, spec)
}

func (s *LocationService) GetLocation(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	return s.locations.GetLocation(ctx, id)
}

func (s *LocationService) CreateLocation(ctx context.Context, ownerID uuid.UUID, request *model.CreateLocationRequest) (*model.Location, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	location := &model.Location{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        strings.ToLower(request.Name),
		Description: request.Description,
		City:        request.City,
		State:       request.State,
		PhoneNumber: request.PhoneNumber,
		Address:     request.Address,
		PlaceID:     request.PlaceID,
		Geo: model.GeoPoint{
			Longitude: request.Longitude,
			Latitude:  request.Latitude,
		},
		ImageURL: request.ImageURL,
	}
	if !location.Geo.Valid() {
		return nil, appErrors.ErrInvalidLatLng
	}

	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteLocation removes a location. Vendors may only remove their own;
// odogwu may remove any.
func (s *LocationService) DeleteLocation(ctx context.Context, actor *usermodel.User, id uuid.UUID) error {
	location, err := s.locations.GetLocation(ctx, id)
	if err != nil {
		return err
	}

	if actor.Role != usermodel.RoleOdogwu && location.UserID != actor.ID {
		return appErrors.ErrInsufficientPermissions
	}

	return s.locations.DeleteLocation(ctx, id)
}

// Within returns the locations inside distance miles of the latlng center.
func (s *LocationService) Within(ctx context.Context, distance, latlng string) ([]model.Location, error) {
	miles, err := strconv.ParseFloat(distance, 64)
	if err != nil || miles <= 0 {
		return nil, appErrors.ErrInvalidInput
	}

	lat, lng, err := utils.ParseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	center := model.GeoPoint{Longitude: lng, Latitude: lat}
	return s.locations.Within(ctx, center, miles)
}

// Distances lists all locations ordered by distance in miles from latlng.
func (s *LocationService) Distances(ctx context.Context, latlng string) ([]model.LocationDistance, error) {
	lat, lng, err := utils.ParseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	point := model.GeoPoint{Longitude: lng, Latitude: lat}
	return s.locations.DistancesFrom(ctx, point)
}

func (s *LocationService) CreateZone(ctx context.Context, request *model.CreateZoneRequest) (*model.Zone, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	locationID, err := uuid.Parse(request.LocationID)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid location id", err)
	}

	// Zones may only hang off an existing, active location.
	if _, err := s.locations.GetLocation(ctx, locationID); err != nil {
		return nil, err
	}

	zone := &model.Zone{
		ID:         uuid.New(),
		LocationID: locationID,
		Name:       strings.ToLower(request.Name),
		ZoneNumber: request.ZoneNumber,
		Price:      request.Price,
		IsHourly:   request.IsHourly,
		ImageURL:   request.ImageURL,
	}

	if err := s.zones.Create(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *LocationService) GetZone(ctx context.Context, id uuid.UUID) (*model.Zone, error) {
	return s.zones.GetZone(ctx, id)
}

func (s *LocationService) ListZones(ctx context.Context, locationID uuid.UUID) ([]model.Zone, error) {
	if _, err := s.locations.GetLocation(ctx, locationID); err != nil {
		return nil, err
	}
	return s.zones.ListByLocation(ctx, locationID)
}

func (s *LocationService) UpdateZone(ctx context.Context, id uuid.UUID, request *model.UpdateZoneRequest) (*model.Zone, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = strings.ToLower(*request.Name)
	}
	if request.ZoneNumber != nil {
		fields["zone_number"] = *request.ZoneNumber
	}
	if request.Price != nil {
		fields["price"] = *request.Price
	}
	if request.IsHourly != nil {
		fields["is_hourly"] = *request.IsHourly
	}
	if request.ImageURL != nil {
		fields["image_url"] = *request.ImageURL
	}
	if len(fields) == 0 {
		return s.zones.GetZone(ctx, id)
	}

	return s.zones.UpdateZone(ctx, id, fields)
}

func (s *LocationService) DeleteZone(ctx context.Context, id uuid.UUID) error {
	return s.zones.DeleteZone(ctx, id)
}
