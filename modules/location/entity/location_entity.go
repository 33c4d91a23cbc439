package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Coordinate is a float64 that tolerates string-encoded numbers in request
// bodies ("28.545") and NUMERIC bytes coming back from the store. Consumers
// always see a JSON number.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		*c = Coordinate(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Coordinate(f)
	return nil
}

func (c Coordinate) Value() (driver.Value, error) {
	return float64(c), nil
}

func (c *Coordinate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		*c = Coordinate(v)
	case int64:
		*c = Coordinate(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("failed to scan coordinate from %q: %w", string(v), err)
		}
		*c = Coordinate(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to scan coordinate from %q: %w", v, err)
		}
		*c = Coordinate(f)
	default:
		return fmt.Errorf("unsupported coordinate type %T", value)
	}
	return nil
}

// Location is a named geographic point shown on the map.
type Location struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description,omitempty"`
	Lat         Coordinate `db:"lat" json:"lat"`
	Lng         Coordinate `db:"lng" json:"lng"`
}
