package repository

import (
	"context"
	"fmt"
	"strings"

	"eventmap-api/core/database"
	"eventmap-api/core/logger"
	"eventmap-api/modules/event/dto"
	"eventmap-api/modules/event/entity"
)

// EventRepository reads and writes the map_events table. The location_id,
// start_time and end_time columns surface as locationId/startTime/endTime
// through the entity tags; this is the only place the snake_case names exist.
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Event, error)
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Update(ctx context.Context, id string, updates *dto.UpdateEventRequest) error
	Delete(ctx context.Context, id string) error
}

func (r *EventRepository) List(ctx context.Context) ([]entity.Event, error) {
	query := `
		SELECT id, name, description, location_id, start_time, end_time
		FROM map_events
	`
	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query); err != nil {
		logger.Error("EventRepository:List:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO map_events (id, name, description, location_id, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, location_id, start_time, end_time
	`
	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.ID, event.Name, event.Description, event.LocationID, event.StartTime, event.EndTime)
	if err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

// Update writes only the fields present in the request. An unknown id is a
// silent no-op; callers must not assume the id exists.
func (r *EventRepository) Update(ctx context.Context, id string, updates *dto.UpdateEventRequest) error {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.Name != nil {
		add("name", *updates.Name)
	}
	if updates.Description != nil {
		add("description", *updates.Description)
	}
	if updates.LocationID != nil {
		add("location_id", *updates.LocationID)
	}
	if updates.StartTime != nil {
		add("start_time", *updates.StartTime)
	}
	if updates.EndTime != nil {
		add("end_time", *updates.EndTime)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE map_events SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM map_events WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}
