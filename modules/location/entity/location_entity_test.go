package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateUnmarshalNumber(t *testing.T) {
	var c Coordinate
	require.NoError(t, json.Unmarshal([]byte(`28.545`), &c))
	assert.Equal(t, Coordinate(28.545), c)
}

func TestCoordinateUnmarshalString(t *testing.T) {
	var c Coordinate
	require.NoError(t, json.Unmarshal([]byte(`"77.19"`), &c))
	assert.Equal(t, Coordinate(77.19), c)
}

func TestCoordinateUnmarshalInvalidString(t *testing.T) {
	var c Coordinate
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &c))
}

func TestCoordinateMarshalIsNumber(t *testing.T) {
	data, err := json.Marshal(Coordinate(28.545))
	require.NoError(t, err)
	assert.Equal(t, "28.545", string(data))
}

func TestCoordinateScan(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Coordinate
	}{
		{"float64", float64(12.5), 12.5},
		{"int64", int64(7), 7},
		{"bytes", []byte("28.545"), 28.545},
		{"string", "-0.3421", -0.3421},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coordinate
			require.NoError(t, c.Scan(tt.input))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCoordinateScanUnsupported(t *testing.T) {
	var c Coordinate
	assert.Error(t, c.Scan(true))
}

func TestLocationJSONShape(t *testing.T) {
	loc := Location{
		ID:   "loc-1",
		Name: "Hall A",
		Lat:  28.545,
		Lng:  77.19,
	}

	data, err := json.Marshal(loc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 28.545, decoded["lat"])
	assert.Equal(t, 77.19, decoded["lng"])
	// optional description is omitted when empty
	assert.NotContains(t, decoded, "description")
}
