package dto

type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	LocationID  string `json:"locationId" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
}

// UpdateEventRequest carries a partial update: nil fields are left untouched
// in the stored record.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LocationID  *string `json:"locationId"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}
