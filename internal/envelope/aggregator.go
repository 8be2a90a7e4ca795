// Package envelope implements C1 EnvelopeAggregator: combining a zone's
// surfaces and their constructions into transmission heat-loss
// coefficients, envelope area and per-orientation solar aperture.
package envelope

import (
	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/materials"
	"github.com/e10lab/din18599/internal/model"
)

// frameFactor is f_frame, the fraction of a window's area that is
// effectively glazed aperture for solar absorption bookkeeping.
const frameFactor = 0.7

// ResolvedSurface carries a surface's resolved U-value, SHGC and any
// lookup flags, computed once per zone aggregation.
type ResolvedSurface struct {
	Surface model.Surface
	U       float64
	SHGC    float64
	Flags   []model.Flag
}

// Result is the per-zone output of EnvelopeAggregator.
type Result struct {
	HD, HG, HU, HA, HTB float64
	HTr                 float64
	EnvelopeAreaM2      float64
	// SolarApertureByOrientation maps orientation -> summed solar aperture, m2:
	// area * SHGC * fc * frame factor for windows, plus
	// alpha * area * U * Rse * fc for opaque exterior surfaces.
	SolarApertureByOrientation map[model.Orientation]float64
	// TiltByOrientation records the representative tilt used per
	// orientation bucket (for ClimateModel's MonthlyInsolation lookups).
	TiltByOrientation map[model.Orientation]float64
	Resolved          []ResolvedSurface
	Flags             []model.Flag
}

// Aggregate computes C1 for one zone given its surfaces and the project's
// construction arena.
func Aggregate(zone model.Zone, surfaces []model.Surface, constructions map[model.ID]model.Construction) (Result, error) {
	res := Result{
		SolarApertureByOrientation: make(map[model.Orientation]float64),
		TiltByOrientation:          make(map[model.Orientation]float64),
	}

	for _, s := range surfaces {
		c, ok := constructions[s.ConstructionID]
		if !ok {
			res.Flags = append(res.Flags, model.Flag{
				Kind: string(apperrors.InvalidAssembly), EntityID: string(s.ID),
				Message: "surface references unknown construction",
			})
			continue
		}
		if s.Type == model.Window && !c.IsGlazing {
			res.Flags = append(res.Flags, model.Flag{
				Kind: string(apperrors.InvalidAssembly), EntityID: string(s.ID),
				Message: "window surface construction has no glazing defined",
			})
			continue
		}

		u, uFlags, err := materials.UValueOf(c)
		res.Flags = append(res.Flags, uFlags...)
		if err != nil {
			res.Flags = append(res.Flags, model.Flag{Kind: string(apperrors.InvalidAssembly), EntityID: string(s.ID), Message: err.Error()})
			continue
		}

		resolvedSHGC := 0.0
		if c.IsGlazing {
			v, shgcFlags, serr := materials.SHGCOf(c)
			res.Flags = append(res.Flags, shgcFlags...)
			if serr != nil {
				res.Flags = append(res.Flags, model.Flag{Kind: string(apperrors.InvalidAssembly), EntityID: string(s.ID), Message: serr.Error()})
				continue
			}
			resolvedSHGC = v
		}

		res.Resolved = append(res.Resolved, ResolvedSurface{Surface: s, U: u, SHGC: resolvedSHGC})

		contribution := u * s.AreaM2 * s.Fx

		switch {
		case s.Type.IsGroundCoupled():
			res.HG += contribution
		case s.Type.IsInterior():
			if s.AdjacentZoneID != "" {
				res.HA += contribution
			} else {
				res.HU += contribution
			}
		default: // exterior wall/roof/floor, window, door
			res.HD += contribution
		}

		if s.Type.IsExterior() {
			res.EnvelopeAreaM2 += s.AreaM2
		}

		switch s.Type {
		case model.Window:
			aperture := s.AreaM2 * resolvedSHGC * s.Fc * frameFactor
			res.SolarApertureByOrientation[s.Orientation] += aperture
			res.TiltByOrientation[s.Orientation] = s.ClampedTilt()
		default:
			if s.Type.IsExterior() && s.Alpha > 0 {
				rse := 0.04
				aperture := s.Alpha * s.AreaM2 * u * rse * s.Fc
				res.SolarApertureByOrientation[s.Orientation] += aperture
				res.TiltByOrientation[s.Orientation] = s.ClampedTilt()
			}
		}
	}

	res.HTB = zone.ThermalBridgeSurcharge * res.EnvelopeAreaM2
	res.HTr = res.HD + res.HG + res.HU + res.HTB

	if res.EnvelopeAreaM2 == 0 && zone.FloorAreaM2 > 0 {
		return res, apperrors.New(apperrors.DegenerateZone, string(zone.ID), "zone has non-zero floor area but zero envelope area")
	}
	if res.HTr < 0 {
		return res, apperrors.New(apperrors.DegenerateZone, string(zone.ID), "transmission coefficient is negative")
	}

	return res, nil
}
