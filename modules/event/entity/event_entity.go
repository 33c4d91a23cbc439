package entity

// Event is a time-bounded happening tied to a location on the map.
//
// LocationID is a soft reference: the referenced location may have been
// deleted, and consumers render dangling references as "Unknown Location".
// Start and end times are stored verbatim as serialized date-time strings;
// ordering between them is not enforced.
type Event struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	LocationID  string `db:"location_id" json:"locationId"`
	StartTime   string `db:"start_time" json:"startTime"`
	EndTime     string `db:"end_time" json:"endTime"`
}
