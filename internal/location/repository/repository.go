package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"opos-parking/internal/crud"
	"opos-parking/internal/database"
	"opos-parking/internal/location/model"
	"opos-parking/internal/query"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

// haversineAngle computes the central angle in radians between the bound
// (lat, lng, lat) point and each row's coordinate columns. The least() clamp
// keeps acos in domain when the points coincide.
const haversineAngle = `acos(least(1.0,
	cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) +
	sin(radians(?)) * sin(radians(latitude))))`

// distanceMiles scales the central angle to meters on the WGS84 sphere and
// converts to miles.
var distanceMiles = fmt.Sprintf("%s * %s * %s",
	strconv.FormatFloat(utils.EarthRadiusM, 'f', -1, 64),
	haversineAngle,
	strconv.FormatFloat(utils.MetersToMiles, 'f', -1, 64),
)

type LocationRepository struct {
	*crud.Repository[model.Location]
}

func NewLocationRepository(db *database.Database) *LocationRepository {
	return &LocationRepository{Repository: crud.NewRepository[model.Location](db)}
}

func (r *LocationRepository) GetLocation(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	location, err := r.GetByID(ctx, id)
	if err != nil {
		if crud.IsNotFound(err) {
			return nil, appErrors.ErrLocationNotFound
		}
		return nil, err
	}
	if location.Archived {
		return nil, appErrors.ErrLocationNotFound
	}
	return location, nil
}

func (r *LocationRepository) ListLocations(ctx context.Context, spec *query.Spec) ([]model.Location, error) {
	var locations []model.Location

	tx := r.DB().WithContext(ctx).Model(&model.Location{}).Where("archived = false")
	tx = spec.Apply(tx)

	if err := tx.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	err := r.Delete(ctx, id)
	if crud.IsNotFound(err) {
		return appErrors.ErrLocationNotFound
	}
	return err
}

// Within returns the active locations inside a spherical cap of the given
// radius in miles around the center.
func (r *LocationRepository) Within(ctx context.Context, center model.GeoPoint, radiusMiles float64) ([]model.Location, error) {
	var locations []model.Location

	err := r.DB().WithContext(ctx).
		Where("archived = false").
		Where(haversineAngle+" <= ?", center.Latitude, center.Longitude, center.Latitude, utils.AngularRadius(radiusMiles)).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// DistancesFrom lists every active location projected to id/name/address plus
// its distance in miles from the point, nearest first.
func (r *LocationRepository) DistancesFrom(ctx context.Context, point model.GeoPoint) ([]model.LocationDistance, error) {
	var results []model.LocationDistance

	err := r.DB().WithContext(ctx).
		Model(&model.Location{}).
		Select("id, name, address, "+distanceMiles+" AS distance", point.Latitude, point.Longitude, point.Latitude).
		Where("archived = false").
		Order("distance ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type ZoneRepository struct {
	*crud.Repository[model.Zone]
}

func NewZoneRepository(db *database.Database) *ZoneRepository {
	return &ZoneRepository{Repository: crud.NewRepository[model.Zone](db)}
}

func (r *ZoneRepository) GetZone(ctx context.Context, id uuid.UUID) (*model.Zone, error) {
	zone, err := r.GetByID(ctx, id)
	if err != nil {
		if crud.IsNotFound(err) {
			return nil, appErrors.ErrZoneNotFound
		}
		return nil, err
	}
	if zone.Archived {
		return nil, appErrors.ErrZoneNotFound
	}
	return zone, nil
}

func (r *ZoneRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]model.Zone, error) {
	var zones []model.Zone

	err := r.DB().WithContext(ctx).
		Where("location_id = ? AND archived = false", locationID).
		Order("zone_number ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *ZoneRepository) UpdateZone(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Zone, error) {
	zone, err := r.Update(ctx, id, fields)
	if err != nil {
		if crud.IsNotFound(err) {
			return nil, appErrors.ErrZoneNotFound
		}
		return nil, err
	}
	return zone, nil
}

func (r *ZoneRepository) DeleteZone(ctx context.Context, id uuid.UUID) error {
	err := r.Delete(ctx, id)
	if crud.IsNotFound(err) {
		return appErrors.ErrZoneNotFound
	}
	return err
}
