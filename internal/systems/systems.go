// Package systems implements C5 SystemsModel: converting a zone's monthly
// energy demand into final energy by energy carrier, through a system's
// distribution/emission losses and generator efficiency (including
// temperature-dependent heat pump COP interpolation), plus auxiliary
// pump/fan electricity and PV generation.
package systems

import (
	"sort"

	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

// ConversionResult is one end-use's monthly conversion output.
type ConversionResult struct {
	FinalEnergyKWh float64
	AuxElectricityKWh float64
	Carrier        model.EnergyCarrier
	Flags          []model.Flag
}

// Convert turns a demand (heating/cooling/DHW/AHU) into final energy. If
// sys is nil, the demand cannot be served by any declared system: the
// result carries carrier "unspecified" with zero final energy, and a
// positive demand is flagged MissingSystem, per the spec's invariant that
// demand is still reported even when no generator exists for it.
func Convert(demandKWh float64, sys *model.System, meanOutdoorTempC, operatingHours float64) ConversionResult {
	if sys == nil {
		if demandKWh <= 0 {
			return ConversionResult{Carrier: model.CarrierUnspecified}
		}
		return ConversionResult{
			Carrier: model.CarrierUnspecified,
			Flags: []model.Flag{{
				Kind: string(apperrors.MissingSystem), Message: "no system assigned for this demand; final energy unresolved",
			}},
		}
	}
	if demandKWh <= 0 {
		return ConversionResult{Carrier: sys.Generator.Carrier}
	}

	grossDemand := demandKWh * (1 + sys.Distribution.DistributionLossFraction) * (1 + sys.Emission.EmissionLossFraction)

	efficiency, flags := effectiveEfficiency(sys.Generator, meanOutdoorTempC)
	if efficiency <= 0 {
		flags = append(flags, model.Flag{
			Kind: string(apperrors.InvalidAssembly), EntityID: string(sys.ID),
			Message: "generator has non-positive efficiency/COP",
		})
		return ConversionResult{Carrier: sys.Generator.Carrier, Flags: flags}
	}

	finalKWh := grossDemand / efficiency
	auxKWh := (sys.Distribution.PumpElectricPowerW + sys.Emission.FanPowerW) * operatingHours / 1000.0

	return ConversionResult{
		FinalEnergyKWh:    finalKWh,
		AuxElectricityKWh: auxKWh,
		Carrier:           sys.Generator.Carrier,
		Flags:             flags,
	}
}

// effectiveEfficiency resolves the generator's nominal efficiency/COP,
// interpolating DynamicCOP bins by outdoor temperature when declared
// (heat pumps and chillers), blending toward PartLoadEfficiency otherwise
// when it is declared.
func effectiveEfficiency(g model.Generator, outdoorTempC float64) (float64, []model.Flag) {
	if len(g.DynamicCOP) > 0 {
		return interpolateCOP(g.DynamicCOP, outdoorTempC), nil
	}
	if g.PartLoadEfficiency > 0 {
		return (g.Efficiency + g.PartLoadEfficiency) / 2, nil
	}
	return g.Efficiency, nil
}

// interpolateCOP linearly interpolates COP between the two bracketing
// bins by outdoor temperature, clamping to the nearest bin outside the
// declared range.
func interpolateCOP(bins []model.COPBin, tempC float64) float64 {
	sorted := make([]model.COPBin, len(bins))
	copy(sorted, bins)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OutdoorTempC < sorted[j].OutdoorTempC })

	if tempC <= sorted[0].OutdoorTempC {
		return sorted[0].COP
	}
	last := len(sorted) - 1
	if tempC >= sorted[last].OutdoorTempC {
		return sorted[last].COP
	}
	for i := 0; i < last; i++ {
		lo, hi := sorted[i], sorted[i+1]
		if tempC >= lo.OutdoorTempC && tempC <= hi.OutdoorTempC {
			span := hi.OutdoorTempC - lo.OutdoorTempC
			if span == 0 {
				return lo.COP
			}
			frac := (tempC - lo.OutdoorTempC) / span
			return lo.COP + frac*(hi.COP-lo.COP)
		}
	}
	return sorted[last].COP
}

// PVGenerationKWh returns E_pv for one array over one month given the
// monthly incident insolation on its plane, kWh/m2 (from ClimateModel's
// transposition for the array's orientation/tilt).
func PVGenerationKWh(array model.PVArray, monthlyInsolationKWhM2 float64) float64 {
	return array.KWp * monthlyInsolationKWhM2 * array.PerformanceRatio
}
