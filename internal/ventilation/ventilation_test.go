package ventilation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/e10lab/din18599/internal/model"
)

func baseZone() model.Zone {
	return model.Zone{
		ID: "z1", FloorAreaM2: 100, MeanHeightM: 3,
		Ventilation: model.ZoneVentilationConfig{
			AirTightnessCategory: model.AirTightnessIII,
			ShieldingClass:       2,
		},
	}
}

func TestDerive_NEffAlwaysAtLeastNInf(t *testing.T) {
	zone := baseZone()
	res := Derive(zone, nil, false, true)
	assert.GreaterOrEqual(t, res.HVe, rhoCp*zone.EffectiveVolumeM3()*res.NInf-1e-9)
}

func TestDerive_OperableGlazingAddsWindowAiring(t *testing.T) {
	zone := baseZone()
	withGlazing := Derive(zone, nil, true, true)
	withoutGlazing := Derive(zone, nil, false, true)
	assert.Greater(t, withGlazing.NWin, withoutGlazing.NWin)
	assert.Greater(t, withGlazing.HVe, withoutGlazing.HVe)
}

func TestDerive_NonUsagePeriodDropsMechanicalAndWindowAiring(t *testing.T) {
	zone := baseZone()
	zone.Ventilation.MechanicalUnitIDs = []model.ID{"ahu1"}
	units := map[model.ID]model.VentilationUnit{
		"ahu1": {ID: "ahu1", SupplyFlowM3h: 300, ExhaustFlowM3h: 300, HasHeatRecovery: true, HrEfficiencyHeating: 0.7},
	}
	usage := Derive(zone, units, true, true)
	nonUsage := Derive(zone, units, true, false)
	assert.Greater(t, usage.NMechHeating, 0.0)
	assert.Equal(t, 0.0, nonUsage.NMechHeating)
	assert.Equal(t, 0.0, nonUsage.NWin)
}

func TestDerive_HeatRecoveryReducesMechanicalRate(t *testing.T) {
	zone := baseZone()
	zone.Ventilation.MechanicalUnitIDs = []model.ID{"ahu1"}
	withRecovery := map[model.ID]model.VentilationUnit{
		"ahu1": {ID: "ahu1", SupplyFlowM3h: 300, ExhaustFlowM3h: 300, HasHeatRecovery: true, HrEfficiencyHeating: 0.8},
	}
	withoutRecovery := map[model.ID]model.VentilationUnit{
		"ahu1": {ID: "ahu1", SupplyFlowM3h: 300, ExhaustFlowM3h: 300, HasHeatRecovery: false},
	}
	a := Derive(zone, withRecovery, false, true)
	b := Derive(zone, withoutRecovery, false, true)
	assert.Less(t, a.NMechHeating, b.NMechHeating)
}

func TestDerive_CoolingEfficiencyDefaultsToHeating(t *testing.T) {
	zone := baseZone()
	zone.Ventilation.MechanicalUnitIDs = []model.ID{"ahu1"}
	units := map[model.ID]model.VentilationUnit{
		"ahu1": {ID: "ahu1", SupplyFlowM3h: 300, ExhaustFlowM3h: 300, HasHeatRecovery: true, HrEfficiencyHeating: 0.6},
	}
	res := Derive(zone, units, false, true)
	assert.InDelta(t, res.NMechHeating, res.NMechCooling, 1e-9)
}

func TestDerive_DeclaredCoolingRecoveryYieldsDistinctHVeCooling(t *testing.T) {
	zone := baseZone()
	zone.Ventilation.MechanicalUnitIDs = []model.ID{"ahu1"}
	units := map[model.ID]model.VentilationUnit{
		"ahu1": {
			ID: "ahu1", SupplyFlowM3h: 300, ExhaustFlowM3h: 300, HasHeatRecovery: true,
			HrEfficiencyHeating: 0.8, HrEfficiencyCooling: 0.1,
		},
	}
	res := Derive(zone, units, false, true)
	assert.Less(t, res.NMechHeating, res.NMechCooling)
	assert.Less(t, res.HVe, res.HVeCooling)
}

func TestDerive_NWinTauIgnoresUsagePeriod(t *testing.T) {
	zone := baseZone()
	usage := Derive(zone, nil, false, true)
	nonUsage := Derive(zone, nil, false, false)
	assert.Equal(t, usage.NWinTau, nonUsage.NWinTau)
	assert.Equal(t, minWindowAiringRate, usage.NWinTau)
}

func TestDerive_MissingAirTightnessMeasurementFallsBackToCategory(t *testing.T) {
	zone := baseZone()
	res := Derive(zone, nil, false, true)
	assert.Greater(t, res.NInf, 0.0)
}

func TestDerive_ShieldingClassScalesInfiltration(t *testing.T) {
	sheltered := baseZone()
	sheltered.Ventilation.ShieldingClass = 1
	exposed := baseZone()
	exposed.Ventilation.ShieldingClass = 3

	resSheltered := Derive(sheltered, nil, false, true)
	resExposed := Derive(exposed, nil, false, true)
	assert.Less(t, resSheltered.NInf, resExposed.NInf)
}
