package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/e10lab/din18599/internal/model"
)

func officeProfile() model.UsageProfile {
	return model.UsageProfile{
		Key: "1_office", MaintainedIlluminanceLux: 500,
		LightingDepreciationFactor: 0.8, LuminousEfficacyLmW: 60,
		OccupancyControl: model.OccupancyManual,
	}
}

func TestInstalledPowerDensityWm2_DefaultsEfficacyWhenUnset(t *testing.T) {
	p := officeProfile()
	p.LuminousEfficacyLmW = 0
	withDefault := InstalledPowerDensityWm2(p)
	p.LuminousEfficacyLmW = defaultLuminousEfficacyLmW
	explicit := InstalledPowerDensityWm2(p)
	assert.InDelta(t, explicit, withDefault, 1e-9)
}

func TestOccupancyFactor_Values(t *testing.T) {
	manual := officeProfile()
	sensor := officeProfile()
	sensor.OccupancyControl = model.OccupancySensor
	dual := officeProfile()
	dual.OccupancyControl = model.OccupancyDual

	assert.Equal(t, 1.0, OccupancyFactor(manual))
	assert.Equal(t, 0.7, OccupancyFactor(sensor))
	assert.Equal(t, 0.5, OccupancyFactor(dual))
}

func TestDaylightFactor_NoWindowsIsFullArtificialLighting(t *testing.T) {
	assert.Equal(t, 1.0, DaylightFactor(40, nil))
}

func TestDaylightFactor_SouthWindowsReduceBelowOne(t *testing.T) {
	fd := DaylightFactor(40, []WindowArea{{Orientation: model.South, AreaM2: 8}})
	assert.Less(t, fd, 1.0)
}

func TestDaylightFactor_SouthAdmitsMoreThanNorth(t *testing.T) {
	south := DaylightFactor(40, []WindowArea{{Orientation: model.South, AreaM2: 8}})
	north := DaylightFactor(40, []WindowArea{{Orientation: model.North, AreaM2: 8}})
	assert.Less(t, south, north, "south glazing must admit more daylight, giving a lower (more reducing) F_D")
}

func TestConstantIlluminanceFactor(t *testing.T) {
	withControl := officeProfile()
	withControl.ConstantIlluminanceControl = true
	assert.Equal(t, constantIlluminanceFactor, ConstantIlluminanceFactor(withControl))
	assert.Equal(t, 1.0, ConstantIlluminanceFactor(officeProfile()))
}

func TestMonthlyDemandKWh_NoGlazingStrictlyHigherThanWithGlazing(t *testing.T) {
	p := officeProfile()
	withoutGlazing := MonthlyDemandKWh(40, p, nil, 200)
	withGlazing := MonthlyDemandKWh(40, p, []WindowArea{{Orientation: model.South, AreaM2: 8}}, 200)
	assert.Greater(t, withoutGlazing, withGlazing, "a zone without any glazed surface must have strictly higher lighting demand")
}
