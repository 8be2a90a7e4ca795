package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

func wallConstruction(insulationThicknessM float64) model.Construction {
	return model.Construction{
		ID:       "wall-1",
		Category: model.CategoryWall,
		Layers: []model.Layer{
			{Name: "brick", ConductivityWmK: 0.8, ThicknessM: 0.24},
			{Name: "insulation", ConductivityWmK: 0.035, ThicknessM: insulationThicknessM},
			{Name: "plaster", ConductivityWmK: 0.5, ThicknessM: 0.015},
		},
	}
}

func TestUValueOf_Opaque_Positive(t *testing.T) {
	u, flags, err := UValueOf(wallConstruction(0.10))
	require.NoError(t, err)
	assert.Empty(t, flags)
	assert.Greater(t, u, 0.0)
}

func TestUValueOf_MoreInsulation_LowersU(t *testing.T) {
	thin, err := uOnly(wallConstruction(0.05))
	require.NoError(t, err)
	thick, err := uOnly(wallConstruction(0.20))
	require.NoError(t, err)
	assert.Less(t, thick, thin, "adding insulation thickness must never raise U-value")
}

func uOnly(c model.Construction) (float64, error) {
	u, _, err := UValueOf(c)
	return u, err
}

func TestUValueOf_InvalidAssembly_NoLayers(t *testing.T) {
	_, _, err := UValueOf(model.Construction{ID: "empty-wall", Category: model.CategoryWall})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidAssembly))
}

func TestUValueOf_Glazing_Lookup(t *testing.T) {
	glz := model.Construction{
		ID:             "win-1",
		IsGlazing:      true,
		PaneCount:      2,
		Gas:            model.GasArgon,
		GapThicknessMM: 16,
		GlassClass:     model.GlassSoftLowE,
		FrameClass:     model.FramePlasticOrWood,
	}
	u, flags, err := UValueOf(glz)
	require.NoError(t, err)
	assert.Empty(t, flags)
	assert.Greater(t, u, 0.0)
	assert.Less(t, u, 2.0)
}

func TestUValueOf_Glazing_MorePanesLowersU(t *testing.T) {
	two := model.Construction{IsGlazing: true, PaneCount: 2, Gas: model.GasAir, GapThicknessMM: 12, GlassClass: model.GlassGeneral, FrameClass: model.FrameMetalBreak}
	three := two
	three.PaneCount = 3
	uTwo, _, err := UValueOf(two)
	require.NoError(t, err)
	uThree, _, err := UValueOf(three)
	require.NoError(t, err)
	assert.Less(t, uThree, uTwo)
}

func TestUValueOf_Glazing_OutOfTableGapFallsBack(t *testing.T) {
	glz := model.Construction{IsGlazing: true, PaneCount: 2, Gas: model.GasAir, GapThicknessMM: 40, GlassClass: model.GlassGeneral, FrameClass: model.FrameMetalBreak}
	u, flags, err := UValueOf(glz)
	require.NoError(t, err)
	assert.Greater(t, u, 0.0)
	require.Len(t, flags, 1)
	assert.Equal(t, string(apperrors.OutOfTable), flags[0].Kind)
}

func TestSHGCOf_WindowHasSHGC(t *testing.T) {
	glz := model.Construction{IsGlazing: true, PaneCount: 2, Gas: model.GasAir, GapThicknessMM: 12, GlassClass: model.GlassGeneral}
	shgc, _, err := SHGCOf(glz)
	require.NoError(t, err)
	assert.Greater(t, shgc, 0.0)
	assert.Less(t, shgc, 1.0)
}

func TestSHGCOf_NonGlazingIsInvalid(t *testing.T) {
	_, _, err := SHGCOf(model.Construction{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidAssembly))
}
