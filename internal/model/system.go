package model

// Generator is the energy conversion device of a system: a boiler, heat
// pump, chiller, etc. Efficiency holds the nominal efficiency (combustion/
// district systems) or nominal COP/EER (heat pumps/chillers).
type Generator struct {
	Kind    GeneratorKind
	Carrier EnergyCarrier

	Efficiency float64 // dimensionless eta, or COP/EER

	// PartLoadEfficiency, if non-zero, is blended against Efficiency by
	// SystemsModel's part-load correction; heat pumps additionally
	// interpolate COP across DynamicCOP bins keyed by outdoor temperature.
	PartLoadEfficiency float64

	DynamicCOP []COPBin
}

// COPBin is one (outdoor temperature, COP) sample used to interpolate a
// heat pump's effective seasonal COP.
type COPBin struct {
	OutdoorTempC float64
	COP          float64
}

// Distribution carries the hydronic/air distribution characteristics used
// to derive distribution losses and pump auxiliary energy.
type Distribution struct {
	TemperatureRegime string // "low_temp", "standard", "high_temp"
	PumpControl       string // "constant", "variable"
	PipeInsulation    string // "none", "standard", "enhanced"
	DistributionLossFraction float64 // fraction of demand lost in distribution, e.g. 0.05
	PumpElectricPowerW       float64
}

// Emission is the terminal unit characteristics (radiator, fan-coil, VAV...).
type Emission struct {
	TerminalType string
	FanPowerW    float64
	EmissionLossFraction float64
}

// ZoneAssignment names the zones a system serves: either a shared list or
// a single dedicated zone.
type ZoneAssignment struct {
	SharedZoneIDs []ID
	DedicatedZoneID ID
}

// Zones returns the flattened list of zone ids this assignment covers.
func (a ZoneAssignment) Zones() []ID {
	if a.DedicatedZoneID != "" {
		return []ID{a.DedicatedZoneID}
	}
	return a.SharedZoneIDs
}

// PVArray is one photovoltaic sub-array of a PV system.
type PVArray struct {
	KWp              float64
	Orientation      Orientation
	TiltDeg          float64
	PerformanceRatio float64
}

// System is the tagged variant over {Heating, Cooling, DHW, AHU, PV, Lighting}.
// Fields irrelevant to EndUse are left zero; callers dispatch on EndUse.
type System struct {
	ID     ID
	Name   string
	EndUse EndUse

	Generator    Generator
	Distribution Distribution
	Emission     Emission
	Zones        ZoneAssignment

	// PVArrays is populated only when EndUse == EndUsePV.
	PVArrays []PVArray
}
