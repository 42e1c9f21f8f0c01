package sun

import (
	"math"

	"github.com/thurmanmarka/solarglide/internal/timeutil"
)

// StandardAltitude is the altitude (in degrees) of the Sun's center when the
// apparent upper limb touches the horizon under standard refraction:
// -(16' semi-diameter + 34' refraction) ≈ -0.8333°.
const StandardAltitude = -0.8333

// -----------------------------
// Day count and transit
// -----------------------------

// CurrentJulianDay returns the integer day count since J2000.0 for a Julian
// Day, offset by 0.0008 days and rounded half away from zero.
func CurrentJulianDay(jd float64) float64 {
	return math.Round(jd - timeutil.J2000 + 0.0008)
}

// MeanSolarTime returns the mean solar time n - lon/360 in days since J2000.0.
// lon is in degrees, east positive.
func MeanSolarTime(jd, lon float64) float64 {
	return CurrentJulianDay(jd) - lon/360.0
}

// Transit returns the Julian Day of solar transit (local apparent noon) at
// longitude lon (degrees, east positive). The mean anomaly and true longitude
// are evaluated at Julian century T.
func Transit(jd, lon, T float64) float64 {
	m := timeutil.Deg2Rad(MeanAnomaly(T))
	l := timeutil.Deg2Rad(TrueLongitude(T))

	return timeutil.J2000 + MeanSolarTime(jd, lon) + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// -----------------------------
// Sidereal time
// -----------------------------

// GreenwichMeanSidereal returns the mean sidereal time at Greenwich in
// degrees for Julian century T (Meeus 12.3, valid at 0h UT). The result is
// not normalized.
func GreenwichMeanSidereal(T float64) float64 {
	return 100.46061837 + 36000.770053608*T + 0.000387933*T*T - T*T*T/38710000.0
}

// LocalMeanSidereal returns GMST - lon in degrees (not normalized).
func LocalMeanSidereal(T, lon float64) float64 {
	return GreenwichMeanSidereal(T) - lon
}

// -----------------------------
// Hour angle and altitude
// -----------------------------

// HourAngleRatio returns the cosine of the hour angle at which the Sun's
// center sits at StandardAltitude for an observer at latitude lat with solar
// declination dec (both degrees):
//
//	cos H = (sin h0 - sin φ sin δ) / (cos φ cos δ)
//
// Values below -1 mean the Sun never sets; above 1, it never rises.
func HourAngleRatio(lat, dec float64) float64 {
	numerator := timeutil.SinD(StandardAltitude) - timeutil.SinD(lat)*timeutil.SinD(dec)
	denominator := timeutil.CosD(lat) * timeutil.CosD(dec)
	return numerator / denominator
}

// HourAngle returns acos(HourAngleRatio) in degrees, together with the ratio.
// When the ratio lies outside [-1, 1] the returned angle is NaN; callers
// classify the ratio.
func HourAngle(lat, dec float64) (float64, float64) {
	ratio := HourAngleRatio(lat, dec)
	return timeutil.Rad2Deg(math.Acos(ratio)), ratio
}

// Altitude returns the altitude of the Sun (degrees) at hour angle ha for an
// observer at latitude lat with solar declination dec (all degrees).
func Altitude(lat, dec, ha float64) float64 {
	latRad := timeutil.Deg2Rad(lat)
	decRad := timeutil.Deg2Rad(dec)
	haRad := timeutil.Deg2Rad(ha)

	sinAlt := math.Sin(latRad)*math.Sin(decRad) + math.Cos(latRad)*math.Cos(decRad)*math.Cos(haRad)

	// Clamp to handle numerical noise
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}

	return timeutil.Rad2Deg(math.Asin(sinAlt))
}
