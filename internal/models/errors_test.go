package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupFailedError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &LookupFailedError{Reason: cause.Error(), Err: cause}

	assert.Equal(t, "lookup failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, NewLookupFailed(NoResultFound), "lookup failed: No result found")
}

func TestIsLookupError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "lookup failed", err: NewLookupFailed("Invalid key"), expected: true},
		{name: "wrapped lookup failed", err: fmt.Errorf("w3w: %w", NewLookupFailed("Invalid key")), expected: true},
		{name: "missing words", err: ErrMissingWords, expected: true},
		{name: "wrapped missing coordinates", err: fmt.Errorf("repository: %w", ErrMissingCoordinates), expected: true},
		{name: "foreign error", err: errors.New("boom"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLookupError(tt.err))
		})
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Latitude: 90, Longitude: -180}.Valid())
	assert.True(t, Coordinate{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Coordinate{Latitude: 90.5, Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: -180.1}.Valid())
}
