package dto

import "eventmap-api/modules/location/entity"

type CreateLocationRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Lat         *entity.Coordinate `json:"lat" validate:"required"`
	Lng         *entity.Coordinate `json:"lng" validate:"required"`
}

// UpdateLocationRequest carries a partial update: nil fields are left
// untouched in the stored record.
type UpdateLocationRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Lat         *entity.Coordinate `json:"lat"`
	Lng         *entity.Coordinate `json:"lng"`
}
