package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

func wallConstruction(id model.ID) model.Construction {
	return model.Construction{
		ID:       id,
		Name:     "exterior wall",
		Category: model.CategoryWall,
		Layers: []model.Layer{
			{Name: "insulation", ConductivityWmK: 0.035, ThicknessM: 0.16},
			{Name: "block", ConductivityWmK: 0.8, ThicknessM: 0.24},
		},
	}
}

func windowConstruction(id model.ID) model.Construction {
	return model.Construction{
		ID: id, Name: "double glazed", IsGlazing: true, PaneCount: 2,
		Gas: model.GasArgon, GapThicknessMM: 16, GlassClass: model.GlassSoftLowE, FrameClass: model.FrameMetalBreak,
	}
}

func baseZone() model.Zone {
	return model.Zone{ID: "z1", Name: "office", FloorAreaM2: 40, MeanHeightM: 3, ThermalBridgeSurcharge: 0.05}
}

func TestAggregate_SumsHDAndEnvelopeArea(t *testing.T) {
	constructions := map[model.ID]model.Construction{
		"wall": wallConstruction("wall"),
		"win":  windowConstruction("win"),
	}
	surfaces := []model.Surface{
		{ID: "s1", Type: model.ExteriorWall, AreaM2: 20, Orientation: model.South, TiltDeg: 90, ConstructionID: "wall", Fx: 1.0, Fc: 1.0},
		{ID: "s2", Type: model.Window, AreaM2: 5, Orientation: model.South, TiltDeg: 90, ConstructionID: "win", Fx: 1.0, Fc: 0.9},
	}

	res, err := Aggregate(baseZone(), surfaces, constructions)
	require.NoError(t, err)

	assert.Greater(t, res.HD, 0.0)
	assert.Equal(t, 25.0, res.EnvelopeAreaM2)
	assert.Greater(t, res.SolarApertureByOrientation[model.South], 0.0)
	assert.Greater(t, res.HTr, res.HD-1e-9) // HTr includes thermal bridge surcharge on top of HD
}

func TestAggregate_GroundCoupledGoesToHG(t *testing.T) {
	constructions := map[model.ID]model.Construction{"floor": wallConstruction("floor")}
	surfaces := []model.Surface{
		{ID: "s1", Type: model.GroundFloor, AreaM2: 40, ConstructionID: "floor", Fx: 0.6},
	}
	zone := baseZone()
	zone.FloorAreaM2 = 0 // no exterior surface: a zone with floor area would be DegenerateZone
	res, err := Aggregate(zone, surfaces, constructions)
	require.NoError(t, err)
	assert.Greater(t, res.HG, 0.0)
	assert.Equal(t, 0.0, res.HD)
	assert.Equal(t, 0.0, res.EnvelopeAreaM2, "ground floors do not count toward the outdoor-facing envelope area")
}

func TestAggregate_InteriorAdjacentZoneGoesToHA(t *testing.T) {
	constructions := map[model.ID]model.Construction{"wall": wallConstruction("wall")}
	surfaces := []model.Surface{
		{ID: "s1", Type: model.InteriorWall, AreaM2: 10, ConstructionID: "wall", Fx: 0.5, AdjacentZoneID: "z2"},
	}
	zone := baseZone()
	zone.FloorAreaM2 = 0 // no exterior surface: a zone with floor area would be DegenerateZone
	res, err := Aggregate(zone, surfaces, constructions)
	require.NoError(t, err)
	assert.Greater(t, res.HA, 0.0)
	assert.Equal(t, 0.0, res.HU)
}

func TestAggregate_InteriorWithoutAdjacentZoneGoesToHU(t *testing.T) {
	constructions := map[model.ID]model.Construction{"wall": wallConstruction("wall")}
	surfaces := []model.Surface{
		{ID: "s1", Type: model.InteriorWall, AreaM2: 10, ConstructionID: "wall", Fx: 0.5},
	}
	zone := baseZone()
	zone.FloorAreaM2 = 0 // no exterior surface: a zone with floor area would be DegenerateZone
	res, err := Aggregate(zone, surfaces, constructions)
	require.NoError(t, err)
	assert.Greater(t, res.HU, 0.0)
	assert.Equal(t, 0.0, res.HA)
}

func TestAggregate_DegenerateZone_AreaButNoEnvelope(t *testing.T) {
	constructions := map[model.ID]model.Construction{"wall": wallConstruction("wall")}
	surfaces := []model.Surface{
		{ID: "s1", Type: model.InteriorWall, AreaM2: 10, ConstructionID: "wall", Fx: 0.5},
	}
	zone := baseZone()
	zone.FloorAreaM2 = 40
	_, err := Aggregate(zone, surfaces, constructions)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.DegenerateZone))
}

func TestAggregate_UnknownConstructionIsFlaggedNotFatal(t *testing.T) {
	surfaces := []model.Surface{
		{ID: "s1", Type: model.ExteriorWall, AreaM2: 20, ConstructionID: "missing", Fx: 1.0},
	}
	res, err := Aggregate(baseZone(), surfaces, map[model.ID]model.Construction{})
	require.Error(t, err) // zero envelope area against non-zero floor area
	assert.NotEmpty(t, res.Flags)
}

func TestAggregate_WindowAperture_ScalesWithShadingFactor(t *testing.T) {
	constructions := map[model.ID]model.Construction{"win": windowConstruction("win")}
	shaded := []model.Surface{
		{ID: "s1", Type: model.Window, AreaM2: 5, Orientation: model.South, TiltDeg: 90, ConstructionID: "win", Fx: 1.0, Fc: 0.3},
	}
	unshaded := []model.Surface{
		{ID: "s1", Type: model.Window, AreaM2: 5, Orientation: model.South, TiltDeg: 90, ConstructionID: "win", Fx: 1.0, Fc: 1.0},
	}
	resShaded, err := Aggregate(baseZone(), shaded, constructions)
	require.NoError(t, err)
	resUnshaded, err := Aggregate(baseZone(), unshaded, constructions)
	require.NoError(t, err)
	assert.Less(t, resShaded.SolarApertureByOrientation[model.South], resUnshaded.SolarApertureByOrientation[model.South])
}
