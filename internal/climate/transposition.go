package climate

import (
	"math"

	"github.com/e10lab/din18599/internal/model"
)

// groundReflectance is rho_g in spec section 4.3, fixed at 0.2 (not made
// configurable; nothing in the spec or the retrieved pack calls for it).
const groundReflectance = 0.2

// southAzimuthDeg converts a compass orientation (degrees from north,
// clockwise) to the south-referenced azimuth convention the beam tilt
// integral uses (south = 0, east negative, west positive).
func southAzimuthDeg(o model.Orientation) float64 {
	az := o.AzimuthDeg() - 180.0
	if az > 180 {
		az -= 360
	}
	if az < -180 {
		az += 360
	}
	return az
}

// MonthlyInsolation returns the twelve monthly incident radiation values,
// kWh/m2, on a surface of the given orientation and tilt at a station,
// per spec section 4.3's isotropic-sky transposition.
func MonthlyInsolation(station model.ClimateStation, orientation model.Orientation, tiltDeg float64) [12]float64 {
	var out [12]float64
	if orientation == model.NoExposure {
		return out
	}
	beta := tiltDeg
	if beta < 0 {
		beta = 0
	}
	if beta >= 180 {
		beta = 180
	}
	azimuth := southAzimuthDeg(orientation)
	if orientation == model.Horizontal {
		beta = 0
	}

	cosBeta := math.Cos(degToRad(beta))

	for m := 0; m < 12; m++ {
		gh := station.Monthly[m].GhKWhM2
		if gh <= 0 {
			out[m] = 0
			continue
		}
		delta := declinationDeg(m)
		g0 := extraterrestrialDailyHorizontalKWhM2(m, station.LatitudeDeg) * float64(daysInMonth(m))
		ghMonth := gh
		kt := clearnessIndex(ghMonth, g0)
		fd := diffuseFraction(kt)

		gd := ghMonth * fd
		gb := ghMonth - gd

		rb := beamTiltFactor(station.LatitudeDeg, delta, beta, azimuth)

		gBetaGamma := gb*rb + gd*(1+cosBeta)/2 + ghMonth*groundReflectance*(1-cosBeta)/2
		if gBetaGamma < 0 {
			gBetaGamma = 0
		}
		out[m] = gBetaGamma
	}
	return out
}

func daysInMonth(month int) int {
	return model.DaysInMonth(month)
}
