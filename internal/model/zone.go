package model

// VentilationUnit is a mechanical supply/exhaust air handling unit that one
// or more zones may be linked to.
type VentilationUnit struct {
	ID ID
	Name string

	SupplyFlowM3h  float64
	ExhaustFlowM3h float64

	HasHeatRecovery bool
	// Sensible heat-recovery effectiveness, distinct for heating and
	// cooling seasons if declared; HrEfficiencyCooling defaults to
	// HrEfficiencyHeating when zero and HasHeatRecovery is true.
	HrEfficiencyHeating float64
	HrEfficiencyCooling float64
}

// ZoneVentilationConfig carries the project/zone-level ventilation
// configuration VentilationModel needs to derive n_inf, n_win and n_mech.
type ZoneVentilationConfig struct {
	// N50 is the measured air-change rate at 50 Pa [1/h]; zero means
	// "look up from AirTightnessCategory".
	N50 float64
	AirTightnessCategory AirTightnessCategory
	// ShieldingClass in {1 (sheltered), 2 (average), 3 (exposed)}.
	ShieldingClass int
	MechanicalUnitIDs []ID
}

// Zone is one thermal zone of the building.
type Zone struct {
	ID   ID
	Name string

	FloorAreaM2 float64
	MeanHeightM float64
	// VolumeM3 is the zone's air volume; if zero it is derived as
	// FloorAreaM2 * MeanHeightM.
	VolumeM3 float64

	ProfileKey string

	// Overrides for the usage profile's default setpoints; nil means
	// "use the profile value".
	HeatingSetpointOverrideC *float64
	CoolingSetpointOverrideC *float64

	// ThermalBridgeSurcharge is DeltaU_wb in {0.03, 0.05, 0.10, 0.15} W/(m2K).
	ThermalBridgeSurcharge float64

	// CmWhm2K is the zone's specific thermal capacity, Wh/(m2*K).
	CmWhm2K float64

	SetbackMode SetbackMode

	Excluded bool

	Ventilation ZoneVentilationConfig

	SurfaceIDs []ID
}

// EffectiveVolumeM3 returns VolumeM3, deriving it from area*height if unset.
func (z Zone) EffectiveVolumeM3() float64 {
	if z.VolumeM3 > 0 {
		return z.VolumeM3
	}
	return z.FloorAreaM2 * z.MeanHeightM
}
