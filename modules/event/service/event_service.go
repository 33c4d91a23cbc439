package service

import (
	"context"
	"encoding/json"

	"eventmap-api/core/cache"
	"eventmap-api/core/constants"
	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/core/utils"
	"eventmap-api/modules/event/dto"
	"eventmap-api/modules/event/entity"
	"eventmap-api/modules/event/repository"
)

type EventServiceInterface interface {
	List(ctx context.Context) ([]entity.Event, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) error
	Remove(ctx context.Context, id string) error
}

type EventService struct {
	repo  repository.EventRepositoryInterface
	cache cache.Cache
}

func NewEventService(repo repository.EventRepositoryInterface, cache cache.Cache) *EventService {
	return &EventService{repo: repo, cache: cache}
}

func (s *EventService) List(ctx context.Context) ([]entity.Event, error) {
	if raw, ok := s.cache.Get(ctx, constants.RedisKeyEventList); ok {
		var cached []entity.Event
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		logger.Warn("EventService:List:CacheDecodeFailed")
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDatabase, "failed to list events", err)
	}
	if events == nil {
		events = []entity.Event{}
	}

	if data, err := json.Marshal(events); err == nil {
		s.cache.Set(ctx, constants.RedisKeyEventList, string(data), constants.ListCacheTTL)
	}
	return events, nil
}

// Create assigns a fresh id and persists the event. The locationId is not
// checked against map_locations; an event may be created against a location
// that no longer exists. Start/end ordering is not validated.
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, error) {
	if req.Name == "" || req.LocationID == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData,
			"name, locationId, startTime and endTime are required", nil)
	}

	event := &entity.Event{
		ID:          utils.GenerateUUID(),
		Name:        req.Name,
		Description: req.Description,
		LocationID:  req.LocationID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDatabase, "failed to create event", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyEventList)
	return created, nil
}

// Update applies only the provided fields. Updating an unknown id is a
// silent no-op.
func (s *EventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) error {
	if id == "" {
		return errors.NewAppError(errors.ErrInvalidRequestData, "event id is required", nil)
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return errors.NewAppError(errors.ErrDatabase, "failed to update event", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyEventList)
	return nil
}

// Remove deletes by id; removing an absent id is not an error.
func (s *EventService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewAppError(errors.ErrInvalidRequestData, "event id is required", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDatabase, "failed to delete event", err)
	}

	s.cache.Delete(ctx, constants.RedisKeyEventList)
	return nil
}
