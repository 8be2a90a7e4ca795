// Package balance implements C3 BalanceEngine, the monthly quasi-steady-
// state heat balance at the center of the calculation: transmission and
// ventilation losses, solar and internal gains, the gain/loss utilisation
// factor, intermittent-operation correction and free-floating indoor
// temperature.
package balance

import (
	"math"

	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

// ZoneParams carries the per-zone constants BalanceEngine needs, already
// resolved by EnvelopeAggregator, VentilationModel and the usage-profile
// catalogue.
type ZoneParams struct {
	HTr float64
	// Individual transmission components, W/K, carried through only for
	// the audit trail; HD + HG + HU + HTB is HTr, and HA is not part of it.
	HD, HG, HU, HA, HTB float64

	// Ventilation coefficients for the usage and non-usage regimes, W/K.
	HVeUsage    float64
	HVeNonUsage float64
	// Cooling-season counterparts, distinct from HVeUsage/HVeNonUsage
	// whenever heat-recovery efficiency is declared separately for
	// cooling (VentilationModel folds mechanical cooling recovery into
	// these instead of the heating ones).
	HVeCoolingUsage    float64
	HVeCoolingNonUsage float64
	// HVeTau always includes the operable-window floor, used only for tau.
	HVeTau float64

	CmWhm2K     float64
	FloorAreaM2 float64

	HeatingSetpointC float64
	CoolingSetpointC float64
	SetbackDeltaK    float64
	SetbackMode      model.SetbackMode

	AnnualUsageDays float64
	DailyUsageHours float64

	FAdapt         float64
	DeltaThetaEMSK float64
}

// MonthInput carries the per-month variables: outdoor temperature and the
// solar/internal gains already computed by ClimateModel, EnvelopeAggregator
// and LightingModel for this month.
type MonthInput struct {
	Month           int
	TOutdoorC       float64
	SolarGainKWh    float64
	InternalGainKWh float64
}

// usageFraction returns the fraction of the year the zone is in its usage
// period, f_usage in [0,1], from the profile's annual days and daily hours.
func usageFraction(p ZoneParams) float64 {
	if p.AnnualUsageDays <= 0 || p.DailyUsageHours <= 0 {
		return 1.0
	}
	f := (p.AnnualUsageDays / 365.0) * (p.DailyUsageHours / 24.0)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// gainUtilisation returns eta_h, the gain-utilisation factor for heating,
// per the standard a/(a+1) formula with the gamma=1 limit case handled.
func gainUtilisation(gamma, a float64) float64 {
	if !isFiniteAndSane(gamma) {
		return 0
	}
	if math.Abs(gamma-1) < 1e-9 {
		return a / (a + 1)
	}
	num := 1 - math.Pow(gamma, a)
	den := 1 - math.Pow(gamma, a+1)
	if den == 0 || !isFiniteAndSane(num/den) {
		return a / (a + 1)
	}
	eta := num / den
	return clamp01(eta)
}

func isFiniteAndSane(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Compute runs the balance for one zone across its twelve months. BACS
// adaptation (f_adapt, Delta_theta_EMS) is expected already resolved into
// params by the caller, keyed by the project's automation class.
func Compute(zone model.Zone, params ZoneParams, months [12]MonthInput) ([12]model.MonthResult, error) {
	var results [12]model.MonthResult

	fUsage := usageFraction(params)
	hVeBlend := fUsage*params.HVeUsage + (1-fUsage)*params.HVeNonUsage
	hVeCoolingBlend := fUsage*params.HVeCoolingUsage + (1-fUsage)*params.HVeCoolingNonUsage
	hTot := params.HTr + hVeBlend
	hTotCooling := params.HTr + hVeCoolingBlend
	if hTot <= 0 {
		return results, apperrors.New(apperrors.DegenerateZone, string(zone.ID), "H_tr + H_ve is non-positive")
	}

	tau := 0.0
	if params.HTr+params.HVeTau > 0 {
		tau = params.CmWhm2K * params.FloorAreaM2 / (params.HTr + params.HVeTau)
	}
	a := 1 + tau/15

	heatingSetpoint := params.HeatingSetpointC + params.DeltaThetaEMSK
	coolingSetpoint := params.CoolingSetpointC + params.DeltaThetaEMSK

	for m := 0; m < 12; m++ {
		in := months[m]
		dtHours := model.HoursInMonth(m)

		qGainRaw := in.SolarGainKWh + in.InternalGainKWh
		qGain := qGainRaw * params.FAdapt

		qT := params.HTr * (heatingSetpoint - in.TOutdoorC) * dtHours / 1000.0
		qV := hVeBlend * (heatingSetpoint - in.TOutdoorC) * dtHours / 1000.0
		qLossHeating := qT + qV

		gamma := 0.0
		if qLossHeating > 0 {
			gamma = qGain / qLossHeating
		}
		etaH := gainUtilisation(gamma, a)
		qHeating := math.Max(0, qLossHeating-etaH*qGain)

		// Cooling mirrors the heating computation with gain/loss roles
		// swapped and the cooling setpoint in place of the heating one;
		// the loss utilisation factor reuses the same gamma, inverted.
		qLossCooling := hTotCooling * (coolingSetpoint - in.TOutdoorC) * dtHours / 1000.0
		gammaInv := 0.0
		if gamma > 0 {
			gammaInv = 1 / gamma
		}
		etaC := gainUtilisation(gammaInv, a)
		qCooling := math.Max(0, qGain-etaC*qLossCooling)

		freeFloating := qHeating == 0 && qCooling == 0
		tIndoor := heatingSetpoint
		if freeFloating && hTot > 0 {
			avgGainW := qGain * 1000.0 / dtHours
			tIndoor = in.TOutdoorC + avgGainW/hTot
			if tIndoor < heatingSetpoint-params.SetbackDeltaK {
				tIndoor = heatingSetpoint - params.SetbackDeltaK
			}
			if tIndoor > coolingSetpoint {
				tIndoor = coolingSetpoint
			}
		}

		fNA, fWe, savingsKWh := intermittentCorrection(params, fUsage, tau, dtHours, qHeating)
		qHeating = math.Max(0, qHeating-savingsKWh)

		results[m] = model.MonthResult{
			Month:            m,
			QTransmissionKWh: qT, QVentilationKWh: qV,
			QSolarKWh: in.SolarGainKWh, QInternalKWh: in.InternalGainKWh,
			QHeatingKWh: qHeating, QCoolingKWh: qCooling,
			TIndoorC: tIndoor, TOutdoorC: in.TOutdoorC,
			HD: params.HD, HG: params.HG, HU: params.HU, HA: params.HA, HTB: params.HTB, HTr: params.HTr,
			HVe: hVeBlend, HVeCooling: hVeCoolingBlend, HVeTau: params.HVeTau,
			CmWhm2K: params.CmWhm2K, TauHours: tau,
			Gamma: gamma, Eta: etaH,
			FNA: fNA, FWe: fWe,
			FAdapt: params.FAdapt, DeltaThetaEMSK: params.DeltaThetaEMSK,
			FreeFloating: freeFloating,
		}
	}

	return results, nil
}

// rechargePenaltyFraction is the share of the non-usage period's
// releasable stored heat that must be paid back as recharge energy when
// the usage period resumes; the remainder is the net savings from
// operating intermittently instead of continuously.
const rechargePenaltyFraction = 0.45

// intermittentCorrection computes the releasable-stored-heat saving for
// a zone in reduced-operation mode: the non-usage period's share of
// continuously-held heating demand is "released" by the building's
// thermal mass at rate `releaseFactor = 1 - exp(-t_NA/tau)`, net of a
// recharge penalty paid back when usage resumes. Heavier mass (larger
// tau) yields a smaller releaseFactor and hence a smaller net saving,
// reproducing the ranking light > heavy > continuous (continuous has
// f_NA = 0 and saves nothing).
func intermittentCorrection(params ZoneParams, fUsage, tau, dtHours, continuousHeatingKWh float64) (fNA, fWe, savingsKWh float64) {
	active := params.SetbackMode == model.SetbackModeSetback || params.SetbackMode == model.SetbackModeShutdown
	if !active || fUsage >= 0.999 || tau <= 0 {
		return 0, 0, 0
	}
	fNA = 1 - fUsage
	tNAHours := fNA * dtHours
	if tNAHours <= 0 {
		return fNA, 0, 0
	}

	deltaThetaNA := params.SetbackDeltaK
	if params.SetbackMode == model.SetbackModeShutdown {
		deltaThetaNA *= 2
	}
	if deltaThetaNA <= 0 {
		deltaThetaNA = 1
	}

	releaseFactor := 1 - math.Exp(-tNAHours/tau)
	fWe = releaseFactor

	// Deeper setbacks make more of the non-usage demand releasable, up to
	// the point the zone is allowed to drift a full 3K below setpoint.
	setbackDepthFactor := deltaThetaNA / 3.0
	if setbackDepthFactor > 1 {
		setbackDepthFactor = 1
	}

	nonUsageBaselineKWh := fNA * continuousHeatingKWh
	releasableKWh := nonUsageBaselineKWh * releaseFactor * setbackDepthFactor
	savingsKWh = releasableKWh * (1 - rechargePenaltyFraction)
	return fNA, fWe, savingsKWh
}
