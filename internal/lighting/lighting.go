// Package lighting implements C4 LightingModel: monthly electric lighting
// demand from a zone's installed power density and the occupancy,
// daylight and constant-illuminance factors that reduce it below full
// nameplate operation.
package lighting

import "github.com/e10lab/din18599/internal/model"

// defaultLuminousEfficacyLmW is used when a profile does not declare one.
const defaultLuminousEfficacyLmW = 60.0

// constantIlluminanceFactor is F_C applied when a zone declares constant
// illuminance control (dimming to compensate for daylight/lamp aging).
const constantIlluminanceFactor = 0.9

// WindowArea is one orientation bucket of a zone's glazed area, as
// aggregated by EnvelopeAggregator.
type WindowArea struct {
	Orientation model.Orientation
	AreaM2      float64
}

// daylightOrientationWeight rates how effectively an orientation's glazing
// admits useful daylight relative to a south-facing reference.
func daylightOrientationWeight(o model.Orientation) float64 {
	switch o {
	case model.South:
		return 1.0
	case model.SouthEast, model.SouthWest:
		return 0.95
	case model.East, model.West:
		return 0.85
	case model.Horizontal:
		return 0.9
	case model.NorthEast, model.NorthWest:
		return 0.75
	case model.North:
		return 0.7
	default:
		return 0.0
	}
}

// InstalledPowerDensityWm2 returns p = E_m / (eta_lm * k_L).
func InstalledPowerDensityWm2(p model.UsageProfile) float64 {
	efficacy := p.LuminousEfficacyLmW
	if efficacy <= 0 {
		efficacy = defaultLuminousEfficacyLmW
	}
	depreciation := p.LightingDepreciationFactor
	if depreciation <= 0 {
		depreciation = 1.0
	}
	return p.MaintainedIlluminanceLux / (efficacy * depreciation)
}

// OccupancyFactor returns F_O for the profile's occupancy-sensing strategy.
func OccupancyFactor(p model.UsageProfile) float64 {
	switch p.OccupancyControl {
	case model.OccupancySensor:
		return 0.7
	case model.OccupancyDual:
		return 0.5
	default:
		return 1.0
	}
}

// DaylightFactor returns F_D from the zone's glazed window area relative
// to its floor area, weighted by orientation. A zone with no glazing at
// all returns 1.0 (full artificial lighting, no daylight offset).
func DaylightFactor(floorAreaM2 float64, windows []WindowArea) float64 {
	if floorAreaM2 <= 0 || len(windows) == 0 {
		return 1.0
	}
	var weightedArea, totalArea float64
	for _, w := range windows {
		if w.AreaM2 <= 0 {
			continue
		}
		weightedArea += w.AreaM2 * daylightOrientationWeight(w.Orientation)
		totalArea += w.AreaM2
	}
	if totalArea == 0 {
		return 1.0
	}
	wwr := totalArea / floorAreaM2
	if wwr > 1 {
		wwr = 1
	}
	orientationFactor := weightedArea / totalArea
	reduction := wwr * orientationFactor * 0.8
	if reduction > 0.7 {
		reduction = 0.7
	}
	return 1.0 - reduction
}

// ConstantIlluminanceFactor returns F_C.
func ConstantIlluminanceFactor(p model.UsageProfile) float64 {
	if p.ConstantIlluminanceControl {
		return constantIlluminanceFactor
	}
	return 1.0
}

// MonthlyDemandKWh computes Q_lighting for one month: t_useHours is the
// zone's lighting operating hours for the month (profile usage hours
// scaled by the month's usage-day count).
func MonthlyDemandKWh(floorAreaM2 float64, p model.UsageProfile, windows []WindowArea, tUseHours float64) float64 {
	powerDensity := InstalledPowerDensityWm2(p)
	fo := OccupancyFactor(p)
	fd := DaylightFactor(floorAreaM2, windows)
	fc := ConstantIlluminanceFactor(p)
	return powerDensity * floorAreaM2 * tUseHours * fo * fd * fc / 1000.0
}
