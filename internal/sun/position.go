package sun

import (
	"math"

	"github.com/thurmanmarka/solarglide/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and declination)
// in degrees. RA is in degrees [0, 360).
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// MeanObliquity returns the mean obliquity of the ecliptic ε0 in degrees.
func MeanObliquity(T float64) float64 {
	return 23.439291111 - 0.013004167*T - 0.000000164*T*T + 0.000000504*T*T*T
}

// CorrectedObliquity returns ε0 corrected for the dominant nutation term,
// as used for apparent positions.
func CorrectedObliquity(T float64) float64 {
	return MeanObliquity(T) + 0.00256*timeutil.CosD(Omega(T))
}

// ApparentEquatorial returns the apparent geocentric right ascension and
// declination of the Sun for Julian century T.
//
//	ε = ε0 + 0.00256 cos Ω
//	α = atan2(cos ε sin λ, cos λ)
//	δ = asin(sin ε sin λ)
func ApparentEquatorial(T float64) Equatorial {
	eps := timeutil.Deg2Rad(CorrectedObliquity(T))
	lambda := timeutil.Deg2Rad(ApparentLongitude(T))

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))
	dec := math.Asin(math.Sin(eps) * math.Sin(lambda))

	return Equatorial{
		RA:  timeutil.Normalize360(timeutil.Rad2Deg(ra)),
		Dec: timeutil.Rad2Deg(dec),
	}
}
