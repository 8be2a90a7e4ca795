// Package engine implements C7 Orchestrator: the single entry point that
// runs ClimateModel once per project, then EnvelopeAggregator,
// VentilationModel, LightingModel and SystemsModel per zone, the monthly
// BalanceEngine per zone, and finally Aggregator across zones — always in
// the project's declared zone order and month 0-11 order, so two runs over
// the same input produce byte-identical Results.
package engine

import (
	"sort"

	"github.com/e10lab/din18599/internal/aggregator"
	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/balance"
	"github.com/e10lab/din18599/internal/climate"
	"github.com/e10lab/din18599/internal/envelope"
	"github.com/e10lab/din18599/internal/lighting"
	"github.com/e10lab/din18599/internal/model"
	"github.com/e10lab/din18599/internal/profilecat"
	"github.com/e10lab/din18599/internal/systems"
	"github.com/e10lab/din18599/internal/ventilation"
)

// Calculate runs the complete monthly energy balance for a project against
// one resolved climate station and returns the consolidated Results. Zones
// that cannot be calculated (unknown profile, degenerate geometry) are
// excluded with a flag rather than aborting the whole run.
func Calculate(project model.Project, station model.ClimateStation, catalogue *profilecat.Catalogue) (model.Results, error) {
	cache := climate.NewCache()
	cache.Precompute(station, orientationTiltPairs(project))

	zoneResults := make([]model.ZoneResult, 0, len(project.Zones))
	for _, zone := range project.Zones {
		zr := calculateZone(project, zone, station, catalogue, cache)
		zoneResults = append(zoneResults, zr)
	}

	return aggregator.Aggregate(project.ID, zoneResults), nil
}

// orientationTiltPairs collects every (orientation, tilt) combination the
// project's surfaces and PV arrays will query, so ClimateModel's cache can
// be filled once up front instead of racing lazy fills across zones.
func orientationTiltPairs(project model.Project) []climate.OrientationTilt {
	seen := make(map[climate.OrientationTilt]bool)
	var pairs []climate.OrientationTilt
	add := func(o model.Orientation, tilt float64) {
		p := climate.OrientationTilt{Orientation: o, TiltDeg: tilt}
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	for _, s := range project.Surfaces {
		add(s.Orientation, s.ClampedTilt())
	}
	for _, sys := range project.Systems {
		if sys.EndUse != model.EndUsePV {
			continue
		}
		for _, arr := range sys.PVArrays {
			add(arr.Orientation, arr.TiltDeg)
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Orientation != pairs[j].Orientation {
			return pairs[i].Orientation < pairs[j].Orientation
		}
		return pairs[i].TiltDeg < pairs[j].TiltDeg
	})
	return pairs
}

func excluded(zoneID model.ID, kind apperrors.Kind, message string) model.ZoneResult {
	return model.ZoneResult{
		ZoneID:   zoneID,
		Excluded: true,
		Flags:    []model.Flag{{Kind: string(kind), EntityID: string(zoneID), Message: message}},
	}
}

// calculateZone runs C1/C2/C4/C5/C3 for one zone and folds its monthly
// results into a ZoneResult.
func calculateZone(project model.Project, zone model.Zone, station model.ClimateStation, catalogue *profilecat.Catalogue, cache *climate.Cache) model.ZoneResult {
	if zone.Excluded {
		return model.ZoneResult{ZoneID: zone.ID, Excluded: true}
	}

	profile, err := catalogue.Lookup(zone.ProfileKey)
	if err != nil {
		return excluded(zone.ID, apperrors.UnknownProfile, err.Error())
	}

	surfaces := project.SurfacesOf(zone)
	env, err := envelope.Aggregate(zone, surfaces, project.Constructions)
	if err != nil {
		return excluded(zone.ID, apperrors.DegenerateZone, err.Error())
	}

	hasOperableGlazing := false
	windowsByOrientation := map[model.Orientation]float64{}
	for _, s := range surfaces {
		if s.Type != model.Window {
			continue
		}
		if s.Operable {
			hasOperableGlazing = true
			windowsByOrientation[s.Orientation] += s.AreaM2
		}
	}
	var windows []lighting.WindowArea
	for o, area := range windowsByOrientation {
		windows = append(windows, lighting.WindowArea{Orientation: o, AreaM2: area})
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].Orientation < windows[j].Orientation })

	units := project.VentilationUnits
	ventUsage := ventilation.Derive(zone, units, hasOperableGlazing, true)
	ventNonUsage := ventilation.Derive(zone, units, hasOperableGlazing, false)

	bacs := profile.BACS[project.AutomationClass]
	params := balance.ZoneParams{
		HTr: env.HTr,
		HD:  env.HD, HG: env.HG, HU: env.HU, HA: env.HA, HTB: env.HTB,
		HVeUsage: ventUsage.HVe, HVeNonUsage: ventNonUsage.HVe,
		HVeCoolingUsage: ventUsage.HVeCooling, HVeCoolingNonUsage: ventNonUsage.HVeCooling,
		HVeTau: ventUsage.HVeTau,
		CmWhm2K: zone.CmWhm2K, FloorAreaM2: zone.FloorAreaM2,
		HeatingSetpointC: model.EffectiveHeatingSetpoint(zone, profile),
		CoolingSetpointC: model.EffectiveCoolingSetpoint(zone, profile),
		SetbackDeltaK:    profile.SetbackDeltaK,
		SetbackMode:      zone.SetbackMode,
		AnnualUsageDays:  profile.AnnualUsageDays,
		DailyUsageHours:  profile.DailyUsageHours,
		FAdapt:           orDefault(bacs.FAdapt, 1.0),
		DeltaThetaEMSK:   bacs.DeltaThetaEMS,
	}

	apertureOrientations := make([]model.Orientation, 0, len(env.SolarApertureByOrientation))
	for o := range env.SolarApertureByOrientation {
		apertureOrientations = append(apertureOrientations, o)
	}
	sort.Slice(apertureOrientations, func(i, j int) bool { return apertureOrientations[i] < apertureOrientations[j] })

	var months [12]balance.MonthInput
	var lightingKWh, dhwKWh [12]float64
	for m := 0; m < 12; m++ {
		days := float64(model.DaysInMonth(m))
		monthlyUsageHours := profile.DailyUsageHours * (profile.AnnualUsageDays / 365.0) * days

		var solarGain float64
		for _, o := range apertureOrientations {
			insolation := cache.Get(station, o, env.TiltByOrientation[o])
			solarGain += env.SolarApertureByOrientation[o] * insolation[m]
		}
		internalGain := (profile.PeopleGainWhm2Day + profile.EquipGainWhm2Day) * zone.FloorAreaM2 * days / 1000.0

		months[m] = balance.MonthInput{
			Month: m, TOutdoorC: station.Monthly[m].TeC,
			SolarGainKWh: solarGain, InternalGainKWh: internalGain,
		}

		lightingKWh[m] = lighting.MonthlyDemandKWh(zone.FloorAreaM2, profile, windows, monthlyUsageHours)
		dhwKWh[m] = profile.DHWDemandWhm2Day * zone.FloorAreaM2 * days / 1000.0
	}

	monthResults, err := balance.Compute(zone, params, months)
	if err != nil {
		return excluded(zone.ID, apperrors.DegenerateZone, err.Error())
	}

	heatingSys := firstSystem(project.SystemsFor(zone.ID, model.EndUseHeating))
	coolingSys := firstSystem(project.SystemsFor(zone.ID, model.EndUseCooling))
	dhwSys := firstSystem(project.SystemsFor(zone.ID, model.EndUseDHW))

	finalByCarrier := map[model.EnergyCarrier]float64{}
	var flags []model.Flag
	var yearlyHeating, yearlyCooling, yearlyLighting, yearlyDHW float64

	for m := 0; m < 12; m++ {
		mr := monthResults[m]
		mr.QLightingKWh = lightingKWh[m]
		mr.QDHWKWh = dhwKWh[m]
		monthResults[m] = mr

		days := float64(model.DaysInMonth(m))
		operatingHours := profile.HVACDailyHours * (profile.AnnualUsageDays / 365.0) * days

		heatingConv := systems.Convert(mr.QHeatingKWh, heatingSys, mr.TOutdoorC, operatingHours)
		coolingConv := systems.Convert(mr.QCoolingKWh, coolingSys, mr.TOutdoorC, operatingHours)
		dhwConv := systems.Convert(mr.QDHWKWh, dhwSys, mr.TOutdoorC, operatingHours)

		for _, conv := range []systems.ConversionResult{heatingConv, coolingConv, dhwConv} {
			finalByCarrier[conv.Carrier] += conv.FinalEnergyKWh
			finalByCarrier[model.CarrierElectricity] += conv.AuxElectricityKWh
			flags = append(flags, conv.Flags...)
		}
		finalByCarrier[model.CarrierElectricity] += mr.QLightingKWh

		yearlyHeating += mr.QHeatingKWh
		yearlyCooling += mr.QCoolingKWh
		yearlyLighting += mr.QLightingKWh
		yearlyDHW += mr.QDHWKWh
	}
	flags = append(flags, env.Flags...)

	var pvGenerationKWh float64
	for _, sys := range project.SystemsFor(zone.ID, model.EndUsePV) {
		for _, arr := range sys.PVArrays {
			insolation := cache.Get(station, arr.Orientation, arr.TiltDeg)
			for m := 0; m < 12; m++ {
				pvGenerationKWh += systems.PVGenerationKWh(arr, insolation[m])
			}
		}
	}

	specificHeating := 0.0
	specificCooling := 0.0
	if zone.FloorAreaM2 > 0 {
		specificHeating = yearlyHeating / zone.FloorAreaM2
		specificCooling = yearlyCooling / zone.FloorAreaM2
	}

	return model.ZoneResult{
		ZoneID:  zone.ID,
		Monthly: monthResults,

		YearlyQHeatingKWh:  yearlyHeating,
		YearlyQCoolingKWh:  yearlyCooling,
		YearlyQLightingKWh: yearlyLighting,
		YearlyQDHWKWh:      yearlyDHW,

		SpecificHeatingKWhM2: specificHeating,
		SpecificCoolingKWhM2: specificCooling,

		FinalEnergyByCarrier: finalByCarrier,
		PVGenerationKWh:      pvGenerationKWh,

		Flags: flags,
	}
}

func firstSystem(sysList []model.System) *model.System {
	if len(sysList) == 0 {
		return nil
	}
	return &sysList[0]
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
