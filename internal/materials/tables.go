// Package materials implements L2 MaterialsAndAssemblies: opaque U-value
// computation from layered constructions, and the tabulated standard-value
// lookups for glazing/door U-values and SHGC, grounded on the
// Material-interface pattern (small interface, named concrete table rows)
// seen across the retrieved thermal-property examples.
package materials

import (
	"math"

	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

// surfaceResistance holds the fixed R_si/R_se pair for one
// (category, exposure) combination, m2*K/W.
type surfaceResistance struct {
	Rsi, Rse float64
}

// resistanceTable is the fixed table of surface-film resistances indexed
// by construction category and exposure, per EN ISO 6946 convention.
var resistanceTable = map[model.ConstructionCategory]map[model.Exposure]surfaceResistance{
	model.CategoryWall: {
		model.ExposureDirect:   {Rsi: 0.13, Rse: 0.04},
		model.ExposureIndirect: {Rsi: 0.13, Rse: 0.13},
		model.ExposureGround:   {Rsi: 0.13, Rse: 0.00},
	},
	model.CategoryRoof: {
		model.ExposureDirect:   {Rsi: 0.10, Rse: 0.04},
		model.ExposureIndirect: {Rsi: 0.10, Rse: 0.10},
		model.ExposureGround:   {Rsi: 0.10, Rse: 0.00},
	},
	model.CategoryFloor: {
		model.ExposureDirect:   {Rsi: 0.17, Rse: 0.04},
		model.ExposureIndirect: {Rsi: 0.17, Rse: 0.17},
		model.ExposureGround:   {Rsi: 0.17, Rse: 0.00},
	},
}

// gapBuckets are the supported glazing gap thicknesses, mm. A declared gap
// is matched to the nearest bucket within +/-3mm; outside that tolerance
// the lookup falls back to the nearest bucket anyway and is flagged
// OutOfTable per spec section 4.2.
var gapBuckets = []float64{6, 12, 16}

// glazingKey identifies one row of the glazing U-value table.
type glazingKey struct {
	Panes int
	Gas   model.GasType
	GapMM float64
	Glass model.GlassClass
	Frame model.FrameClass
}

// shgcKey identifies one row of the SHGC table (no frame dependence).
type shgcKey struct {
	Panes int
	Gas   model.GasType
	GapMM float64
	Glass model.GlassClass
}

var glazingUTable map[glazingKey]float64
var shgcTable map[shgcKey]float64

func init() {
	glazingUTable = make(map[glazingKey]float64)
	shgcTable = make(map[shgcKey]float64)

	for panes := 1; panes <= 4; panes++ {
		for _, gas := range []model.GasType{model.GasAir, model.GasArgon} {
			for _, gap := range gapBuckets {
				for _, glass := range []model.GlassClass{model.GlassGeneral, model.GlassHardLowE, model.GlassSoftLowE} {
					centerU := centerPaneU(panes, gas, gap, glass)
					shgcTable[shgcKey{Panes: panes, Gas: gas, GapMM: gap, Glass: glass}] = shgcOf(panes, glass)
					for _, frame := range []model.FrameClass{model.FrameMetalNoBreak, model.FrameMetalBreak, model.FramePlasticOrWood} {
						glazingUTable[glazingKey{Panes: panes, Gas: gas, GapMM: gap, Glass: glass, Frame: frame}] = centerU + frameOffset(frame)
					}
				}
			}
		}
	}
}

// centerPaneU approximates the standard table's center-of-glass U-value
// for (panes, gas, gap, glass), decreasing with pane count, with argon and
// low-E coatings each giving a further reduction, and a diminishing-returns
// effect of larger gaps.
func centerPaneU(panes int, gas model.GasType, gapMM float64, glass model.GlassClass) float64 {
	base := 5.8 // single glazing, EN ISO 10077 reference value
	perCavity := 2.6
	if gas == model.GasArgon {
		perCavity = 2.1
	}
	switch glass {
	case model.GlassHardLowE:
		perCavity *= 0.75
	case model.GlassSoftLowE:
		perCavity *= 0.55
	}
	gapFactor := 1.0
	if gapMM >= 12 {
		gapFactor = 0.9
	}
	if gapMM >= 16 {
		gapFactor = 0.85
	}
	cavities := panes - 1
	rGlassOnly := 1.0 / base
	rCavity := gapFactor / perCavity
	rTotal := rGlassOnly
	for i := 0; i < cavities; i++ {
		rTotal += rCavity
	}
	u := 1.0 / rTotal
	if u <= 0 || math.IsNaN(u) {
		u = base
	}
	return math.Round(u*100) / 100
}

func frameOffset(frame model.FrameClass) float64 {
	switch frame {
	case model.FrameMetalNoBreak:
		return 0.6
	case model.FrameMetalBreak:
		return 0.3
	case model.FramePlasticOrWood:
		return 0.1
	default:
		return 0.3
	}
}

// shgcOf returns the standard table's SHGC for (panes, glass class): more
// panes and more selective low-E coatings both reduce solar transmittance.
func shgcOf(panes int, glass model.GlassClass) float64 {
	base := 0.85
	switch glass {
	case model.GlassHardLowE:
		base = 0.72
	case model.GlassSoftLowE:
		base = 0.60
	}
	perExtraPane := 0.08
	shgc := base - float64(panes-1)*perExtraPane
	if shgc < 0.15 {
		shgc = 0.15
	}
	return math.Round(shgc*100) / 100
}

// nearestGap returns the nearest supported gap bucket to gapMM, and
// whether it fell outside the +/-3mm tolerance (OutOfTable).
func nearestGap(gapMM float64) (float64, bool) {
	best := gapBuckets[0]
	bestDist := math.Abs(gapMM - best)
	for _, g := range gapBuckets[1:] {
		d := math.Abs(gapMM - g)
		if d < bestDist {
			best, bestDist = g, d
		}
	}
	return best, bestDist > 3
}

// UValueOf computes or looks up the U-value of a construction, per section
// 4.2. Opaque assemblies are computed from layer resistances; glazing and
// doors are looked up from the standard table with nearest-match fallback.
func UValueOf(c model.Construction) (u float64, flags []model.Flag, err error) {
	if !c.IsGlazing {
		return opaqueUValue(c)
	}
	return glazingUValue(c)
}

func opaqueUValue(c model.Construction) (float64, []model.Flag, error) {
	if len(c.Layers) == 0 {
		return 0, nil, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "opaque construction has no layers")
	}
	// Exposure is not stored on Construction: opaque assemblies are
	// resistance-only and exposure-independent at the construction level;
	// the surrounding Surface applies Fx. Here R_se defaults to the
	// direct-exterior row, matching the majority case; EnvelopeAggregator
	// does not re-derive U per exposure, only applies Fx per surface.
	rTable := resistanceTable[c.Category][model.ExposureDirect]
	r := rTable.Rsi + rTable.Rse
	for _, layer := range c.Layers {
		if layer.ConductivityWmK <= 0 || layer.ThicknessM <= 0 {
			return 0, nil, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "layer has non-positive conductivity or thickness")
		}
		r += layer.ThicknessM / layer.ConductivityWmK
	}
	u := 1.0 / r
	if u <= 0 {
		return 0, nil, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "resolved U-value is non-positive")
	}
	return u, nil, nil
}

func glazingUValue(c model.Construction) (float64, []model.Flag, error) {
	if c.PaneCount <= 0 {
		return 0, nil, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "glazing construction missing pane count")
	}
	var flags []model.Flag
	gap, outOfTable := nearestGap(c.GapThicknessMM)
	if outOfTable {
		flags = append(flags, model.Flag{
			Kind:     string(apperrors.OutOfTable),
			EntityID: string(c.ID),
			Message:  "gap thickness outside standard table tolerance, used nearest bucket",
		})
	}
	panes := c.PaneCount
	if panes > 4 {
		panes = 4
		flags = append(flags, model.Flag{Kind: string(apperrors.OutOfTable), EntityID: string(c.ID), Message: "pane count above table range, clamped to 4"})
	}
	u, ok := glazingUTable[glazingKey{Panes: panes, Gas: c.Gas, GapMM: gap, Glass: c.GlassClass, Frame: c.FrameClass}]
	if !ok {
		return 0, flags, apperrors.New(apperrors.OutOfTable, string(c.ID), "no glazing U-value row for requested combination")
	}
	if u <= 0 {
		return 0, flags, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "resolved glazing U-value is non-positive")
	}
	return u, flags, nil
}

// SHGCOf looks up the solar heat gain coefficient for a glazing
// construction, per section 4.2's shgcOf operation.
func SHGCOf(c model.Construction) (float64, []model.Flag, error) {
	if !c.IsGlazing {
		return 0, nil, apperrors.New(apperrors.InvalidAssembly, string(c.ID), "SHGC requested for non-glazing construction")
	}
	var flags []model.Flag
	gap, outOfTable := nearestGap(c.GapThicknessMM)
	if outOfTable {
		flags = append(flags, model.Flag{Kind: string(apperrors.OutOfTable), EntityID: string(c.ID), Message: "gap thickness outside standard table tolerance, used nearest bucket"})
	}
	panes := c.PaneCount
	if panes > 4 {
		panes = 4
	}
	shgc, ok := shgcTable[shgcKey{Panes: panes, Gas: c.Gas, GapMM: gap, Glass: c.GlassClass}]
	if !ok {
		return 0, flags, apperrors.New(apperrors.OutOfTable, string(c.ID), "no SHGC row for requested combination")
	}
	return shgc, flags, nil
}
