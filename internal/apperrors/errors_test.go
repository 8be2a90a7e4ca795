package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	e := New(UnknownProfile, "zone-1", "profile key not found")
	assert.Equal(t, "UnknownProfile[zone-1]: profile key not found", e.Error())

	wrapped := Wrap(OutOfTable, "win-3", "no matching glazing row", errors.New("boom"))
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	e := Wrap(ClimateUnavailable, "station-1", "no record", cause)
	assert.Equal(t, cause, errors.Unwrap(e))
}

func TestIs(t *testing.T) {
	e := New(DegenerateZone, "z1", "zero envelope")
	assert.True(t, Is(e, DegenerateZone))
	assert.False(t, Is(e, MissingSystem))
	assert.False(t, Is(errors.New("plain"), DegenerateZone))
}
