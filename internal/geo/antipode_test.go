package geo

import (
	"math"
	"testing"

	"antipodes-api/internal/models"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func TestAntipode(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Coordinate
		expected models.Coordinate
	}{
		{
			name:     "origin",
			input:    models.Coordinate{Latitude: 0, Longitude: 0},
			expected: models.Coordinate{Latitude: 0, Longitude: 180},
		},
		{
			name:     "positive latitude and longitude",
			input:    models.Coordinate{Latitude: 40.7128, Longitude: 74.0060},
			expected: models.Coordinate{Latitude: -40.7128, Longitude: -105.9940},
		},
		{
			name:     "negative latitude and longitude",
			input:    models.Coordinate{Latitude: -33.8688, Longitude: -151.2093},
			expected: models.Coordinate{Latitude: 33.8688, Longitude: 28.7907},
		},
		{
			name:     "max values",
			input:    models.Coordinate{Latitude: 90, Longitude: 180},
			expected: models.Coordinate{Latitude: -90, Longitude: 0},
		},
		{
			name:     "min values",
			input:    models.Coordinate{Latitude: -90, Longitude: -180},
			expected: models.Coordinate{Latitude: 90, Longitude: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Antipode(tt.input)

			assert.InDelta(t, tt.expected.Latitude, result.Latitude, tolerance)
			assert.InDelta(t, tt.expected.Longitude, result.Longitude, tolerance)
		})
	}
}

func TestAntipode_DoubleReturnsToStart(t *testing.T) {
	start := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	result := Antipode(Antipode(start))

	assert.InDelta(t, start.Latitude, result.Latitude, tolerance)
	assert.InDelta(t, start.Longitude, result.Longitude, tolerance)
}

func TestAntipode_MeridianBoundary(t *testing.T) {
	// -180 and 180 are the same meridian; 180 is the canonical form.
	fromWest := Antipode(Antipode(models.Coordinate{Latitude: 10, Longitude: -180}))
	fromEast := Antipode(Antipode(models.Coordinate{Latitude: 10, Longitude: 180}))

	assert.Equal(t, 180.0, fromWest.Longitude)
	assert.Equal(t, 180.0, fromEast.Longitude)
	assert.Equal(t, 180.0, Antipode(models.Coordinate{Longitude: 0}).Longitude)
	assert.Equal(t, 0.0, Antipode(models.Coordinate{Longitude: -180}).Longitude)
}

func TestAntipode_EquatorHasPositiveZeroLatitude(t *testing.T) {
	for _, lat := range []float64{0, math.Copysign(0, -1)} {
		result := Antipode(models.Coordinate{Latitude: lat, Longitude: 0})

		assert.Zero(t, result.Latitude)
		assert.False(t, math.Signbit(result.Latitude), "latitude %v", lat)
	}
}

func TestAntipode_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("latitude is negated and longitude stays in (-180, 180]", prop.ForAll(
		func(lat, lon float64) bool {
			a := Antipode(models.Coordinate{Latitude: lat, Longitude: lon})
			return a.Latitude == -lat && a.Longitude > -180 && a.Longitude <= 180
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.Property("applying antipode twice is the identity off the -180 meridian", prop.ForAll(
		func(lat, lon float64) bool {
			if lon == -180 {
				return true
			}
			c := models.Coordinate{Latitude: lat, Longitude: lon}
			back := Antipode(Antipode(c))
			return abs(back.Latitude-c.Latitude) < tolerance && abs(back.Longitude-c.Longitude) < tolerance
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.TestingRun(t)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
