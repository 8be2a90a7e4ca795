package model

// Flag is one non-fatal audit entry: a recoverable error condition
// (InvalidAssembly, OutOfTable, MissingSystem, ...) recorded against the
// entity that triggered it instead of aborting the calculation.
type Flag struct {
	Kind     string
	EntityID string
	Message  string
}

// MonthResult carries every quantity the balance engine computes for one
// zone in one month, including the full audit trail named in spec section 4.6.
type MonthResult struct {
	Month int // 0-11

	// Losses and gains, kWh.
	QTransmissionKWh float64
	QVentilationKWh  float64
	QSolarKWh        float64
	QInternalKWh     float64

	// Net demand, kWh.
	QHeatingKWh float64
	QCoolingKWh float64

	// Lighting and DHW, kWh.
	QLightingKWh float64
	QDHWKWh      float64

	// Indoor temperature actually used/solved for this month, degrees C.
	TIndoorC float64
	TOutdoorC float64

	// Audit trail.
	HD, HG, HU, HA, HTB float64
	HTr                 float64
	HVe                 float64 // heating-season ventilation coefficient used in the balance
	HVeCooling           float64 // cooling-season ventilation coefficient used in the balance
	HVeTau               float64 // ventilation coefficient used only for tau
	CmWhm2K              float64
	TauHours             float64
	Gamma                float64 // gain/loss ratio
	Eta                  float64 // utilisation factor used
	FNA                  float64 // non-usage-period reduction factor
	FWe                  float64 // stored-heat release factor 1 - exp(-t_NA/tau)
	FAdapt               float64
	DeltaThetaEMSK       float64
	FreeFloating         bool

	Flags []Flag
}

// ZoneResult is one zone's complete monthly and yearly outcome.
type ZoneResult struct {
	ZoneID  ID
	Excluded bool

	Monthly [12]MonthResult

	YearlyQHeatingKWh  float64
	YearlyQCoolingKWh  float64
	YearlyQLightingKWh float64
	YearlyQDHWKWh      float64

	SpecificHeatingKWhM2 float64
	SpecificCoolingKWhM2 float64

	// FinalEnergyByCarrier is this zone's final energy consumption, kWh/yr,
	// after SystemsModel's generator/distribution/emission conversion,
	// indexed by carrier. Demand that no system serves adds zero final
	// energy under CarrierUnspecified and raises a MissingSystem flag.
	FinalEnergyByCarrier map[EnergyCarrier]float64

	// PVGenerationKWh is this zone's share of on-site PV generation
	// credited against CarrierElectricity.
	PVGenerationKWh float64

	Flags []Flag
}

// CarrierTotal is the building-level final/primary energy and emissions
// for one energy carrier.
type CarrierTotal struct {
	Carrier           EnergyCarrier
	FinalEnergyKWh    float64
	PrimaryEnergyKWh  float64
	CO2Kg             float64
}

// Results is the root of the calculation output: per-zone detail, building
// totals, and the consolidated audit trail.
type Results struct {
	ProjectID ID

	Zones []ZoneResult

	BuildingFinalEnergyKWh map[EnergyCarrier]float64
	CarrierTotals          []CarrierTotal

	TotalPrimaryEnergyKWh float64
	TotalCO2Kg            float64

	Flags []Flag
}
