// Package sun implements a low-precision solar ephemeris (Meeus, chapter 25)
// as a chain of closed-form functions of the Julian century T since J2000.0.
//
// All angles taken and returned are in degrees; radians are used only inside
// the circular functions.
package sun

import (
	"math"

	"github.com/thurmanmarka/solarglide/internal/timeutil"
)

// MeanLongitude returns the geometric mean longitude of the Sun L0,
// normalized to [0, 360).
func MeanLongitude(T float64) float64 {
	return timeutil.Normalize360(280.46645 + 36000.76983*T + 0.0003032*T*T)
}

// MeanAnomaly returns the mean anomaly of the Sun M, normalized to [0, 360).
func MeanAnomaly(T float64) float64 {
	return timeutil.Normalize360(357.52910 + 35999.05030*T - 0.0001559*T*T - 0.00000048*T*T*T)
}

// Eccentricity returns the eccentricity of the Earth's orbit (dimensionless).
func Eccentricity(T float64) float64 {
	return 0.016708617 - 0.000042037*T - 0.0000001236*T*T
}

// EquationOfCenter returns the Sun's equation of the center C. The result is
// not normalized and is negative for half of the orbit.
func EquationOfCenter(T float64) float64 {
	m := timeutil.Deg2Rad(MeanAnomaly(T))

	return (1.9146-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000290*math.Sin(3*m)
}

// TrueLongitude returns the Sun's true geometric longitude, normalized to
// [0, 360).
func TrueLongitude(T float64) float64 {
	return timeutil.Normalize360(MeanLongitude(T) + EquationOfCenter(T))
}

// TrueAnomaly returns M + C.
//
// Not normalized: the sum can leave [0, 360) and only ever feeds a cosine.
func TrueAnomaly(T float64) float64 {
	return MeanAnomaly(T) + EquationOfCenter(T)
}

// RadiusVector returns the Sun-Earth distance in astronomical units.
func RadiusVector(T float64) float64 {
	e := Eccentricity(T)
	v := timeutil.Deg2Rad(TrueAnomaly(T))

	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(v))
}

// Omega returns the longitude of the Moon's ascending node used by the
// nutation and aberration corrections, in degrees (not normalized).
func Omega(T float64) float64 {
	return 125.04 - 1934.136*T
}

// ApparentLongitude returns the Sun's apparent longitude λ, corrected for
// nutation and aberration.
//
// Not normalized after the subtraction: the correction is a few thousandths
// of a degree and the result only feeds circular functions.
func ApparentLongitude(T float64) float64 {
	return TrueLongitude(T) - 0.00569 - 0.00478*timeutil.SinD(Omega(T))
}
