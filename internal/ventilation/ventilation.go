// Package ventilation implements C2 VentilationModel: deriving a zone's
// air-change rate components (infiltration, window airing, mechanical) and
// the resulting ventilation heat-loss coefficients for both the monthly
// balance and the time-constant computation.
package ventilation

import "github.com/e10lab/din18599/internal/model"

// rhoCp is the volumetric heat capacity of air, Wh/(m3*K).
const rhoCp = 0.34

// minWindowAiringRate is the floor applied to n_win when a zone has at
// least one operable glazed surface, h^-1.
const minWindowAiringRate = 0.1

// n50ByCategory gives the standard default air-change rate at 50 Pa by
// air-tightness category when no measured value is declared.
var n50ByCategory = map[model.AirTightnessCategory]float64{
	model.AirTightnessI:   2.0,
	model.AirTightnessII:  4.0,
	model.AirTightnessIII: 6.0,
	model.AirTightnessIV:  10.0,
}

// shieldingFactor converts a 1 (sheltered) - 3 (exposed) shielding class
// into the multiplier f_e applied to n50 to obtain n_inf.
func shieldingFactor(shieldingClass int) float64 {
	switch shieldingClass {
	case 1:
		return 0.7
	case 3:
		return 1.3
	default:
		return 1.0
	}
}

// Result is the per-zone, per-regime output of VentilationModel. A regime
// is either "usage" (the zone's occupied/conditioned hours) or
// "non-usage" (setback/shutdown hours), since infiltration, window airing
// and mechanical rates all differ between the two.
type Result struct {
	NInf float64
	NWin float64
	// NMechHeating and NMechCooling are the mechanical air-change rate
	// already reduced for heat-recovery effectiveness, one per season
	// since recovery efficiency may be declared separately.
	NMechHeating float64
	NMechCooling float64

	// NWinTau always includes the operable-window contribution and is
	// used only to derive the thermal time constant tau, never the
	// monthly balance itself (spec's explicit H_ve / H_ve_tau split).
	NWinTau float64

	HVe        float64 // heating-season ventilation heat-loss coefficient, W/K
	HVeCooling float64 // cooling-season ventilation heat-loss coefficient, W/K
	HVeTau     float64 // coefficient used for tau, W/K
}

// Derive computes C2 for one zone, given whether the zone is presently in
// its usage or non-usage period and whether it has any operable glazing.
func Derive(zone model.Zone, units map[model.ID]model.VentilationUnit, hasOperableGlazing bool, usagePeriod bool) Result {
	cfg := zone.Ventilation
	volume := zone.EffectiveVolumeM3()

	n50 := cfg.N50
	if n50 <= 0 {
		n50 = n50ByCategory[cfg.AirTightnessCategory]
	}
	nInf := n50 * shieldingFactor(cfg.ShieldingClass)

	nWin := 0.0
	if hasOperableGlazing {
		nWin = minWindowAiringRate
	}
	nWinTau := minWindowAiringRate // tau always assumes the window contribution is available

	var nMechHeating, nMechCooling float64
	if usagePeriod {
		for _, id := range cfg.MechanicalUnitIDs {
			unit, ok := units[id]
			if !ok || volume <= 0 {
				continue
			}
			flowM3h := (unit.SupplyFlowM3h + unit.ExhaustFlowM3h) / 2
			rate := flowM3h / volume

			heatingEff := 0.0
			coolingEff := 0.0
			if unit.HasHeatRecovery {
				heatingEff = unit.HrEfficiencyHeating
				coolingEff = unit.HrEfficiencyCooling
				if coolingEff <= 0 {
					coolingEff = heatingEff
				}
			}
			nMechHeating += rate * (1 - heatingEff)
			nMechCooling += rate * (1 - coolingEff)
		}
	} else {
		// Non-usage periods: mechanical systems are assumed off and window
		// airing is dropped; only infiltration remains in effect.
		nWin = 0
	}

	nEffHeating := nInf + nWin + nMechHeating
	nEffCooling := nInf + nWin + nMechCooling
	nEffTau := nInf + nWinTau + nMechHeating

	return Result{
		NInf: nInf, NWin: nWin,
		NMechHeating: nMechHeating, NMechCooling: nMechCooling,
		NWinTau:    nWinTau,
		HVe:        rhoCp * volume * nEffHeating,
		HVeCooling: rhoCp * volume * nEffCooling,
		HVeTau:     rhoCp * volume * nEffTau,
	}
}
