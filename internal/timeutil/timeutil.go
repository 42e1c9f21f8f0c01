package timeutil

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// -----------------------------
// Calendar dates and Julian days
// -----------------------------

// JulianDay returns the Julian Day for a proleptic Gregorian calendar date.
// The fractional part of day encodes the UTC time of day (13.5 is noon on the
// 13th).
func JulianDay(year, month int, day float64) float64 {
	return julian.CalendarGregorianToJD(year, month, day)
}

// JulianDay2000 returns the number of days since J2000.0 for the given date.
func JulianDay2000(year, month int, day float64) float64 {
	return JulianDay(year, month, day) - J2000
}

// JulianCenturies returns Julian centuries since J2000.0 for the given date.
func JulianCenturies(year, month int, day float64) float64 {
	return JulianDay2000(year, month, day) / DaysPerCentury
}

// CenturiesFromJD returns Julian centuries since J2000.0 for a Julian Day.
func CenturiesFromJD(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// CalendarDate splits t (converted to UTC) into year, month and a fractional
// day of month.
func CalendarDate(t time.Time) (year, month int, day float64) {
	u := t.UTC()
	y, m, d := u.Date()

	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	return y, int(m), float64(d) + hour/24.0
}

// JDToTime converts a Julian Day to a UTC time.Time, rounded to the second.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC().Round(time.Second)
}

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// Normalize360 maps any angle in degrees into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -tiny + 360 rounds to 360 in float64
	if d >= 360.0 {
		d = 0
	}
	return d
}
