package service

import (
	"context"
	"encoding/json"

	"eventmap-api/core/cache"
	"eventmap-api/core/constants"
	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/core/utils"
	"eventmap-api/modules/location/dto"
	"eventmap-api/modules/location/entity"
	"eventmap-api/modules/location/repository"
)

type LocationServiceInterface interface {
	List(ctx context.Context) ([]entity.Location, error)
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*entity.Location, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) error
	Remove(ctx context.Context, id string) error
}

type LocationService struct {
	repo  repository.LocationRepositoryInterface
	cache cache.Cache
}

func NewLocationService(repo repository.LocationRepositoryInterface, cache cache.Cache) *LocationService {
	return &LocationService{repo: repo, cache: cache}
}

// List returns all locations in the store's natural order. The redis cache
// serves repeats for up to a minute; any cache problem falls through to the
// store.
func (s *LocationService) List(ctx context.Context) ([]entity.Location, error) {
	if raw, ok := s.cache.Get(ctx, constants.RedisKeyLocationList); ok {
		var cached []entity.Location
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		logger.Warn("LocationService:List:CacheDecodeFailed")
	}

	locations, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDatabase, "failed to list locations", err)
	}
	if locations == nil {
		locations = []entity.Location{}
	}

	if data, err := json.Marshal(locations); err == nil {
		s.cache.Set(ctx, constants.RedisKeyLocationList, string(data), constants.ListCacheTTL)
	}
	return locations, nil
}

// Create assigns a fresh id and persists the location. Duplicate submissions
// produce duplicate records; there is no dedup key.
func (s *LocationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*entity.Location, error) {
	if req.Name == "" || req.Lat == nil || req.Lng == nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "name, lat and lng are required", nil)
	}

	location := &entity.Location{
		ID:          utils.GenerateUUID(),
		Name:        req.Name,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
	}

	created, err := s.repo.Create(ctx, location)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDatabase, "failed to create location", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyLocationList)
	return created, nil
}

// Update applies only the provided fields. Updating an unknown id is a
// silent no-op.
func (s *LocationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) error {
	if id == "" {
		return errors.NewAppError(errors.ErrInvalidRequestData, "location id is required", nil)
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return errors.NewAppError(errors.ErrDatabase, "failed to update location", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyLocationList)
	return nil
}

// Remove deletes by id. Removing an absent id is not an error. Events that
// reference the removed location keep their locationId; the reference goes
// dangling and consumers must tolerate it.
func (s *LocationService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewAppError(errors.ErrInvalidRequestData, "location id is required", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDatabase, "failed to delete location", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyLocationList)
	return nil
}
