// Package aggregator implements C6 Aggregator: summing every zone's
// final energy by carrier in a fixed, deterministic order, then applying
// primary-energy and CO2 factor tables to produce building totals.
package aggregator

import "github.com/e10lab/din18599/internal/model"

// carrierOrder fixes the iteration order for carrier-keyed summation so
// the same project always yields byte-identical Results ordering,
// independent of Go's randomized map iteration.
var carrierOrder = []model.EnergyCarrier{
	model.CarrierElectricity,
	model.CarrierNaturalGas,
	model.CarrierDistrictHeat,
	model.CarrierBiomass,
	model.CarrierSolarThermal,
	model.CarrierUnspecified,
}

// primaryEnergyFactor is PEF, dimensionless, the non-renewable primary
// energy per unit of final energy for each carrier.
var primaryEnergyFactor = map[model.EnergyCarrier]float64{
	model.CarrierElectricity:  1.8,
	model.CarrierNaturalGas:   1.1,
	model.CarrierDistrictHeat: 0.6,
	model.CarrierBiomass:      0.2,
	model.CarrierSolarThermal: 0.0,
	model.CarrierUnspecified:  0.0,
}

// co2FactorKgPerKWh is the CO2 emission factor per unit final energy.
var co2FactorKgPerKWh = map[model.EnergyCarrier]float64{
	model.CarrierElectricity:  0.380,
	model.CarrierNaturalGas:   0.201,
	model.CarrierDistrictHeat: 0.180,
	model.CarrierBiomass:      0.025,
	model.CarrierSolarThermal: 0.0,
	model.CarrierUnspecified:  0.0,
}

// Aggregate sums every zone's final energy by carrier plus PV generation
// (credited against electricity) and derives total primary energy and
// CO2 emissions.
func Aggregate(projectID model.ID, zones []model.ZoneResult) model.Results {
	totals := make(map[model.EnergyCarrier]float64, len(carrierOrder))
	var pvTotal float64
	var flags []model.Flag

	for _, z := range zones {
		for _, carrier := range carrierOrder {
			totals[carrier] += z.FinalEnergyByCarrier[carrier]
		}
		pvTotal += z.PVGenerationKWh
		flags = append(flags, z.Flags...)
	}
	totals[model.CarrierElectricity] -= pvTotal
	if totals[model.CarrierElectricity] < 0 {
		totals[model.CarrierElectricity] = 0
	}

	building := make(map[model.EnergyCarrier]float64, len(carrierOrder))
	var carrierTotals []model.CarrierTotal
	var totalPrimary, totalCO2 float64
	for _, carrier := range carrierOrder {
		finalKWh := totals[carrier]
		if finalKWh == 0 {
			continue
		}
		primary := finalKWh * primaryEnergyFactor[carrier]
		co2 := finalKWh * co2FactorKgPerKWh[carrier]
		carrierTotals = append(carrierTotals, model.CarrierTotal{
			Carrier: carrier, FinalEnergyKWh: finalKWh,
			PrimaryEnergyKWh: primary, CO2Kg: co2,
		})
		building[carrier] = finalKWh
		totalPrimary += primary
		totalCO2 += co2
	}

	return model.Results{
		ProjectID: projectID, Zones: zones,
		BuildingFinalEnergyKWh: building,
		CarrierTotals:          carrierTotals,
		TotalPrimaryEnergyKWh:  totalPrimary,
		TotalCO2Kg:             totalCO2,
		Flags:                  flags,
	}
}
