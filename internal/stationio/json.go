// Package stationio implements the external-collaborator readers the
// balance engine depends on but never calls itself: a pre-resolved
// station JSON format, and the EnergyPlus EPW hourly weather file format.
// Both translate into a model.ClimateStation and never touch the
// calculation packages directly, per the spec's external-interfaces
// boundary.
package stationio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/e10lab/din18599/internal/model"
)

// stationDoc is the on-disk JSON shape for a pre-resolved station.
type stationDoc struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	LatitudeDeg float64 `json:"latitude_deg"`
	LongitudeDeg float64 `json:"longitude_deg"`
	ElevationM  float64 `json:"elevation_m"`
	Monthly     []struct {
		TeC     float64 `json:"te_c"`
		GhKWhM2 float64 `json:"gh_kwh_m2"`
	} `json:"monthly"`
}

// ReadStationJSON loads a pre-resolved station record from disk.
func ReadStationJSON(path string) (model.ClimateStation, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("opening station file %q: %w", path, err)
	}
	defer f.Close()

	var doc stationDoc
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return model.ClimateStation{}, fmt.Errorf("decoding station file %q: %w", path, err)
	}
	if len(doc.Monthly) != 12 {
		return model.ClimateStation{}, fmt.Errorf("station file %q: expected 12 monthly records, got %d", path, len(doc.Monthly))
	}

	station := model.ClimateStation{
		ID: doc.ID, Name: doc.Name,
		LatitudeDeg: doc.LatitudeDeg, LongitudeDeg: doc.LongitudeDeg, ElevationM: doc.ElevationM,
	}
	for i, m := range doc.Monthly {
		station.Monthly[i] = model.MonthlyClimate{TeC: m.TeC, GhKWhM2: m.GhKWhM2}
	}
	return station, nil
}
