package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/e10lab/din18599/internal/model"
)

func seoulStation() model.ClimateStation {
	return model.ClimateStation{
		ID: "seoul", Name: "Seoul", LatitudeDeg: 37.5, LongitudeDeg: 127.0,
		Monthly: [12]model.MonthlyClimate{
			{TeC: -2.4, GhKWhM2: 68}, {TeC: 0.4, GhKWhM2: 88}, {TeC: 5.7, GhKWhM2: 124},
			{TeC: 12.5, GhKWhM2: 150}, {TeC: 17.8, GhKWhM2: 163}, {TeC: 22.2, GhKWhM2: 146},
			{TeC: 24.9, GhKWhM2: 124}, {TeC: 25.7, GhKWhM2: 140}, {TeC: 21.2, GhKWhM2: 128},
			{TeC: 14.8, GhKWhM2: 112}, {TeC: 7.2, GhKWhM2: 78}, {TeC: 0.4, GhKWhM2: 60},
		},
	}
}

func TestMonthlyInsolation_NoExposureIsZero(t *testing.T) {
	out := MonthlyInsolation(seoulStation(), model.NoExposure, 90)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestMonthlyInsolation_TiltClampedAbove180(t *testing.T) {
	station := seoulStation()
	clamped := MonthlyInsolation(station, model.South, 250)
	at180 := MonthlyInsolation(station, model.South, 180)
	assert.Equal(t, at180, clamped)
}

func TestMonthlyInsolation_SouthExceedsNorthInWinter(t *testing.T) {
	station := seoulStation()
	south := MonthlyInsolation(station, model.South, 90)
	north := MonthlyInsolation(station, model.North, 90)
	assert.Greater(t, south[0], north[0], "south vertical surface must receive more radiation than north in January at this latitude")
}

func TestMonthlyInsolation_OrientationParity_EastWestMirror(t *testing.T) {
	station := seoulStation()
	east := MonthlyInsolation(station, model.East, 90)
	west := MonthlyInsolation(station, model.West, 90)
	for m := range east {
		assert.InDelta(t, east[m], west[m], 1e-6, "symmetric climate must yield mirrored E/W insolation")
	}
}

func TestCache_MemoizesResults(t *testing.T) {
	c := NewCache()
	station := seoulStation()
	first := c.Get(station, model.South, 90)
	second := c.Get(station, model.South, 90)
	assert.Equal(t, first, second)
	assert.Len(t, c.values, 1)
}
