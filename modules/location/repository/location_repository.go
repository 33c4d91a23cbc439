package repository

import (
	"context"
	"fmt"
	"strings"

	"eventmap-api/core/database"
	"eventmap-api/core/logger"
	"eventmap-api/modules/location/dto"
	"eventmap-api/modules/location/entity"
)

// LocationRepository reads and writes the map_locations table. Column names
// are snake_case at this boundary only; everything above sees the entity's
// camelCase JSON shape.
type LocationRepository struct {
	DB database.IDatabase
}

func NewLocationRepository(db database.IDatabase) *LocationRepository {
	return &LocationRepository{DB: db}
}

type LocationRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Location, error)
	Create(ctx context.Context, location *entity.Location) (*entity.Location, error)
	Update(ctx context.Context, id string, updates *dto.UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}

func (r *LocationRepository) List(ctx context.Context) ([]entity.Location, error) {
	query := `
		SELECT id, name, description, lat, lng
		FROM map_locations
	`
	var locations []entity.Location
	if err := r.DB.SelectContext(ctx, &locations, query); err != nil {
		logger.Error("LocationRepository:List:Error:", err)
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	query := `
		INSERT INTO map_locations (id, name, description, lat, lng)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, lat, lng
	`
	var created entity.Location
	err := r.DB.GetContext(ctx, &created, query,
		location.ID, location.Name, location.Description, location.Lat, location.Lng)
	if err != nil {
		logger.Error("LocationRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

// Update writes only the fields present in the request. An unknown id is a
// silent no-op; callers must not assume the id exists.
func (r *LocationRepository) Update(ctx context.Context, id string, updates *dto.UpdateLocationRequest) error {
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
	if updates.Lat != nil {
		add("lat", *updates.Lat)
	}
	if updates.Lng != nil {
		add("lng", *updates.Lng)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE map_locations SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Error("LocationRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM map_locations WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("LocationRepository:Delete:Error:", err)
		return err
	}
	return nil
}
