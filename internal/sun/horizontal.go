package sun

import (
	"math"

	"github.com/thurmanmarka/solarglide/internal/timeutil"
)

// Horizontal holds topocentric horizontal coordinates in degrees.
type Horizontal struct {
	Altitude  float64 // geometric altitude above the horizon, [-90, 90]
	Azimuth   float64 // reckoned from north through east, [0, 360)
	HourAngle float64 // local hour angle of the body, [0, 360)
}

// SiderealAt returns the mean sidereal time at Greenwich for any instant
// (Meeus 12.4), normalized to [0, 360).
func SiderealAt(jd float64) float64 {
	d := jd - timeutil.J2000
	T := d / timeutil.DaysPerCentury

	return timeutil.Normalize360(280.46061837 + 360.98564736629*d + 0.000387933*T*T - T*T*T/38710000.0)
}

// LocalHourAngle returns GST + lon - ra at jd, normalized to [0, 360).
// lon is east positive.
func LocalHourAngle(jd, lon, ra float64) float64 {
	return timeutil.Normalize360(SiderealAt(jd) + lon - ra)
}

// HorizontalAt converts equatorial coordinates (ra, dec) to altitude and
// azimuth for an observer at (lat, lon) at Julian Day jd. Refraction is not
// applied.
func HorizontalAt(lat, lon, ra, dec, jd float64) Horizontal {
	ha := LocalHourAngle(jd, lon, ra)

	sinH, cosH := math.Sincos(timeutil.Deg2Rad(ha))
	sinD, cosD := math.Sincos(timeutil.Deg2Rad(dec))
	sinP, cosP := math.Sincos(timeutil.Deg2Rad(lat))

	x := -cosH*cosD*sinP + sinD*cosP
	y := -sinH * cosD
	z := cosH*cosD*cosP + sinD*sinP

	return Horizontal{
		Altitude:  timeutil.Rad2Deg(math.Atan2(z, math.Hypot(x, y))),
		Azimuth:   timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(y, x))),
		HourAngle: ha,
	}
}
