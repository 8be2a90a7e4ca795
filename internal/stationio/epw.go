package stationio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/e10lab/din18599/internal/logging"
	"github.com/e10lab/din18599/internal/model"
)

// epwHeaderLines is the fixed number of metadata lines preceding the
// hourly data block in an EPW file (LOCATION, DESIGN CONDITIONS, TYPICAL/
// EXTREME PERIODS, GROUND TEMPERATURES, HOLIDAYS/DAYLIGHT SAVINGS,
// COMMENTS 1, COMMENTS 2, DATA PERIODS).
const epwHeaderLines = 8

// epwDryBulbCol and epwGhiCol are the zero-based column indices of dry-bulb
// temperature and global horizontal irradiance in the EPW data record
// layout (EnergyPlus Auxiliary Programs, table "EPW Data Dictionary").
const (
	epwMonthCol   = 1
	epwDryBulbCol = 6
	epwGhiCol     = 13
)

// ReadEPW reads an EnergyPlus EPW weather file and aggregates its hourly
// dry-bulb temperature and global horizontal irradiance records into the
// twelve monthly means/sums a ClimateStation needs, adapting the
// header-skip-then-column-map idiom used for delimited weather exports
// elsewhere in this codebase.
func ReadEPW(path string) (model.ClimateStation, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("opening EPW file %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	station, err := parseEPWLocation(reader)
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("reading EPW file %q: %w", path, err)
	}

	var teSum [12]float64
	var teCount [12]int
	var ghSum [12]float64

	// The LOCATION line was already consumed; epwHeaderLines-1 metadata
	// lines remain before the hourly data block starts.
	for i := 0; ; i++ {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return model.ClimateStation{}, fmt.Errorf("reading EPW data line %d of %q: %w", i+2, path, rerr)
		}
		if i < epwHeaderLines-1 {
			continue
		}
		month, terr := strconv.Atoi(strings.TrimSpace(record[epwMonthCol]))
		if terr != nil || month < 1 || month > 12 {
			logging.Warn("stationio: skipping EPW line %d of %q: bad month field", i+2, path)
			continue
		}
		m := month - 1

		dryBulb, derr := strconv.ParseFloat(strings.TrimSpace(record[epwDryBulbCol]), 64)
		if derr != nil {
			logging.Warn("stationio: skipping EPW line %d of %q: bad dry-bulb field", i+2, path)
			continue
		}
		ghi, gerr := strconv.ParseFloat(strings.TrimSpace(record[epwGhiCol]), 64)
		if gerr != nil {
			logging.Warn("stationio: skipping EPW line %d of %q: bad GHI field", i+2, path)
			continue
		}

		teSum[m] += dryBulb
		teCount[m]++
		ghSum[m] += ghi / 1000.0 // Wh/m2 -> kWh/m2 per hour
	}

	for m := 0; m < 12; m++ {
		if teCount[m] == 0 {
			return model.ClimateStation{}, fmt.Errorf("EPW file %q: no hourly records found for month %d", path, m+1)
		}
		station.Monthly[m] = model.MonthlyClimate{
			TeC:     teSum[m] / float64(teCount[m]),
			GhKWhM2: ghSum[m],
		}
	}
	return station, nil
}

// parseEPWLocation reads the LOCATION header line (the first line of an
// EPW file) for station identity and latitude, leaving reader positioned
// at the start of the next line.
func parseEPWLocation(reader *csv.Reader) (model.ClimateStation, error) {
	fields, err := reader.Read()
	if err != nil {
		return model.ClimateStation{}, fmt.Errorf("reading LOCATION line: %w", err)
	}
	if len(fields) < 10 || !strings.EqualFold(fields[0], "LOCATION") {
		return model.ClimateStation{}, fmt.Errorf("missing LOCATION header")
	}
	lat, _ := strconv.ParseFloat(strings.TrimSpace(fields[6]), 64)
	lon, _ := strconv.ParseFloat(strings.TrimSpace(fields[7]), 64)
	elev, _ := strconv.ParseFloat(strings.TrimSpace(fields[9]), 64)

	return model.ClimateStation{
		ID: fields[1], Name: fields[1],
		LatitudeDeg: lat, LongitudeDeg: lon, ElevationM: elev,
	}, nil
}
