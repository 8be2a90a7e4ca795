package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e10lab/din18599/internal/model"
)

func TestAggregate_SumsAcrossZonesByCarrier(t *testing.T) {
	zones := []model.ZoneResult{
		{ZoneID: "z1", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{model.CarrierNaturalGas: 100, model.CarrierElectricity: 50}},
		{ZoneID: "z2", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{model.CarrierNaturalGas: 200, model.CarrierElectricity: 30}},
	}
	res := Aggregate("p1", zones)
	assert.InDelta(t, 300, res.BuildingFinalEnergyKWh[model.CarrierNaturalGas], 1e-9)
	assert.InDelta(t, 80, res.BuildingFinalEnergyKWh[model.CarrierElectricity], 1e-9)
}

func TestAggregate_PVGenerationOffsetsElectricity(t *testing.T) {
	zones := []model.ZoneResult{
		{ZoneID: "z1", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{model.CarrierElectricity: 100}, PVGenerationKWh: 40},
	}
	res := Aggregate("p1", zones)
	assert.InDelta(t, 60, res.BuildingFinalEnergyKWh[model.CarrierElectricity], 1e-9)
}

func TestAggregate_PVGenerationCannotDriveElectricityNegative(t *testing.T) {
	zones := []model.ZoneResult{
		{ZoneID: "z1", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{model.CarrierElectricity: 10}, PVGenerationKWh: 100},
	}
	res := Aggregate("p1", zones)
	assert.Equal(t, 0.0, res.BuildingFinalEnergyKWh[model.CarrierElectricity])
}

func TestAggregate_PrimaryEnergyAndCO2ApplyPerCarrierFactors(t *testing.T) {
	zones := []model.ZoneResult{
		{ZoneID: "z1", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{model.CarrierNaturalGas: 100}},
	}
	res := Aggregate("p1", zones)
	require.Len(t, res.CarrierTotals, 1)
	assert.Equal(t, model.CarrierNaturalGas, res.CarrierTotals[0].Carrier)
	assert.InDelta(t, 110.0, res.CarrierTotals[0].PrimaryEnergyKWh, 1e-9)
	assert.InDelta(t, 20.1, res.CarrierTotals[0].CO2Kg, 1e-9)
	assert.InDelta(t, 110.0, res.TotalPrimaryEnergyKWh, 1e-9)
}

func TestAggregate_ZeroCarrierTotalsAreOmitted(t *testing.T) {
	zones := []model.ZoneResult{{ZoneID: "z1", FinalEnergyByCarrier: map[model.EnergyCarrier]float64{}}}
	res := Aggregate("p1", zones)
	assert.Empty(t, res.CarrierTotals)
}

func TestAggregate_CollectsZoneFlags(t *testing.T) {
	zones := []model.ZoneResult{
		{ZoneID: "z1", Flags: []model.Flag{{Kind: "MissingSystem", EntityID: "z1"}}},
	}
	res := Aggregate("p1", zones)
	require.Len(t, res.Flags, 1)
	assert.Equal(t, "MissingSystem", res.Flags[0].Kind)
}
