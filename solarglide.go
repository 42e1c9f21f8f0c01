// Package solarglide computes the apparent position of the Sun for a given
// date and terrestrial location using low-precision solar ephemeris formulas
// (Meeus-style, accurate to about 0.01°).
//
// An Observation is an immutable value: build one for a date with
// NewObservation or FromTime, place it with WithLocation, then read any of
// the derived quantities:
//
//	obs := solarglide.NewObservation(1992, 10, 13.0).WithLocation(40.7, -74.0)
//	eq := obs.ApparentPosition()
//	ha, err := obs.HourAngle()
//
// Angles are in degrees throughout. Longitude is east positive (west
// negative, e.g. -105 for 105°W).
package solarglide

import (
	"errors"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/solarglide/internal/sun"
	"github.com/thurmanmarka/solarglide/internal/timeutil"
)

// StandardAltitude is the altitude of the Sun's center (degrees) used for
// horizon crossings: solar semi-diameter plus standard refraction.
const StandardAltitude = sun.StandardAltitude

var (
	// ErrPolarDay is returned when the Sun stays above the standard altitude
	// all day (it never sets at this latitude and date).
	ErrPolarDay = errors.New("sun never sets on this date")

	// ErrPolarNight is returned when the Sun stays below the standard
	// altitude all day (it never rises at this latitude and date).
	ErrPolarNight = errors.New("sun never rises on this date")
)

// Equatorial holds apparent geocentric equatorial coordinates in degrees.
type Equatorial struct {
	RA  float64 // right ascension, degrees [0, 360)
	Dec float64 // declination, degrees [-90, 90]
}

// RAHours returns the right ascension in hours [0, 24).
func (e Equatorial) RAHours() float64 {
	return e.RA / 15.0
}

// RAUnit returns the right ascension as a unit.RA (radians).
func (e Equatorial) RAUnit() unit.RA {
	return unit.RAFromDeg(e.RA)
}

// DecUnit returns the declination as a unit.Angle (radians).
func (e Equatorial) DecUnit() unit.Angle {
	return unit.AngleFromDeg(e.Dec)
}

// Horizontal is the Sun's place in the observer's sky, in degrees.
type Horizontal struct {
	Altitude  float64 // geometric, no refraction, [-90, 90]
	Azimuth   float64 // from north through east, [0, 360)
	HourAngle float64 // local hour angle, [0, 360)
}

// Observation is one (date, location) pair together with its derived time
// bases. The zero value is not useful; use NewObservation or FromTime.
//
// Observation has no mutable state: every method is a pure function of its
// fields and is safe to call from multiple goroutines.
type Observation struct {
	year  int
	month int
	day   float64

	julianDay     float64
	julianDay2000 float64
	julianCentury float64

	lat float64
	lon float64
}

// NewObservation returns an observation for a proleptic Gregorian calendar
// date. The fractional part of day is the UTC time of day (13.5 is noon UTC
// on the 13th). The location defaults to lat=0 lon=0.
func NewObservation(year, month int, day float64) Observation {
	return Observation{}.WithDate(year, month, day)
}

// FromTime returns an observation for the instant t (converted to UTC).
func FromTime(t time.Time) Observation {
	year, month, day := timeutil.CalendarDate(t)
	return NewObservation(year, month, day)
}

// WithDate returns a copy of o for the given date, with every time base
// recomputed from it. The location is kept.
func (o Observation) WithDate(year, month int, day float64) Observation {
	o.year = year
	o.month = month
	o.day = day

	o.julianDay = timeutil.JulianDay(year, month, day)
	o.julianDay2000 = o.julianDay - timeutil.J2000
	o.julianCentury = timeutil.CenturiesFromJD(o.julianDay)

	return o
}

// WithLocation returns a copy of o placed at latitude lat and longitude lon
// (degrees, north and east positive). Values are not validated.
func (o Observation) WithLocation(lat, lon float64) Observation {
	o.lat = lat
	o.lon = lon
	return o
}

// Year returns the calendar year of the observation.
func (o Observation) Year() int { return o.year }

// Month returns the calendar month, 1 to 12.
func (o Observation) Month() int { return o.month }

// Day returns the day of month with the UTC time of day as its fraction.
func (o Observation) Day() float64 { return o.day }

// JulianDay returns the Julian Day of the observation.
func (o Observation) JulianDay() float64 { return o.julianDay }

// JulianDay2000 returns the days elapsed since J2000.0.
func (o Observation) JulianDay2000() float64 { return o.julianDay2000 }

// JulianCentury returns the Julian centuries elapsed since J2000.0.
func (o Observation) JulianCentury() float64 { return o.julianCentury }

// Latitude returns the observer's latitude in degrees, north positive.
func (o Observation) Latitude() float64 { return o.lat }

// Longitude returns the observer's longitude in degrees, east positive.
func (o Observation) Longitude() float64 { return o.lon }

// Time returns the observation instant in UTC, rounded to the second.
func (o Observation) Time() time.Time {
	return timeutil.JDToTime(o.julianDay)
}

// -----------------------------
// Time basis
// -----------------------------

// CurrentJulianDay returns the whole number of days since J2000.0,
// round(JD - 2451545.0 + 0.0008).
func (o Observation) CurrentJulianDay() float64 {
	return sun.CurrentJulianDay(o.julianDay)
}

// -----------------------------
// Geometric solar elements
// -----------------------------

// MeanLongitude returns the geometric mean longitude of the Sun [0, 360).
func (o Observation) MeanLongitude() float64 {
	return sun.MeanLongitude(o.julianCentury)
}

// MeanAnomaly returns the mean anomaly of the Sun [0, 360).
func (o Observation) MeanAnomaly() float64 {
	return sun.MeanAnomaly(o.julianCentury)
}

// EarthOrbitEccentricity returns the eccentricity of the Earth's orbit.
func (o Observation) EarthOrbitEccentricity() float64 {
	return sun.Eccentricity(o.julianCentury)
}

// EquationOfCenter returns the Sun's equation of the center (may be negative).
func (o Observation) EquationOfCenter() float64 {
	return sun.EquationOfCenter(o.julianCentury)
}

// TrueLongitude returns the Sun's true longitude [0, 360).
func (o Observation) TrueLongitude() float64 {
	return sun.TrueLongitude(o.julianCentury)
}

// TrueAnomaly returns mean anomaly + equation of center. It is deliberately
// left un-normalized and may exceed 360.
func (o Observation) TrueAnomaly() float64 {
	return sun.TrueAnomaly(o.julianCentury)
}

// RadiusVector returns the Sun-Earth distance in AU.
func (o Observation) RadiusVector() float64 {
	return sun.RadiusVector(o.julianCentury)
}

// ApparentLongitude returns the Sun's apparent longitude. It is deliberately
// left un-normalized after the nutation/aberration correction.
func (o Observation) ApparentLongitude() float64 {
	return sun.ApparentLongitude(o.julianCentury)
}

// -----------------------------
// Obliquity and apparent position
// -----------------------------

// EclipticMeanObliquity returns the mean obliquity of the ecliptic.
func (o Observation) EclipticMeanObliquity() float64 {
	return sun.MeanObliquity(o.julianCentury)
}

// ApparentPosition returns the apparent right ascension and declination of
// the Sun.
func (o Observation) ApparentPosition() Equatorial {
	eq := sun.ApparentEquatorial(o.julianCentury)
	return Equatorial{RA: eq.RA, Dec: eq.Dec}
}

// -----------------------------
// Local time and hour angle
// -----------------------------

// MeanSolarTime returns CurrentJulianDay - longitude/360.
func (o Observation) MeanSolarTime() float64 {
	return sun.MeanSolarTime(o.julianDay, o.lon)
}

// Transit returns the Julian Day of solar transit (local apparent noon) at
// the observation's longitude.
func (o Observation) Transit() float64 {
	return sun.Transit(o.julianDay, o.lon, o.julianCentury)
}

// TransitTime returns Transit as a UTC time.
func (o Observation) TransitTime() time.Time {
	return timeutil.JDToTime(o.Transit())
}

// GreenwichMeanSiderealTime returns the Greenwich mean sidereal time in
// degrees (not normalized).
func (o Observation) GreenwichMeanSiderealTime() float64 {
	return sun.GreenwichMeanSidereal(o.julianCentury)
}

// LocalMeanSiderealTime returns GMST - longitude in degrees (not normalized).
func (o Observation) LocalMeanSiderealTime() float64 {
	return sun.LocalMeanSidereal(o.julianCentury, o.lon)
}

// HourAngleZero returns normalize(LMST + longitude), which reduces to the
// normalized GMST. Nothing else in the package depends on it.
func (o Observation) HourAngleZero() float64 {
	return timeutil.Normalize360(o.LocalMeanSiderealTime() + o.lon)
}

// HourAngle returns the hour angle (degrees) at which the Sun's center
// crosses StandardAltitude at the observation's latitude and date.
//
// It returns ErrPolarDay or ErrPolarNight when no such crossing exists.
func (o Observation) HourAngle() (float64, error) {
	ha, ratio := sun.HourAngle(o.lat, o.ApparentPosition().Dec)

	switch {
	case ratio < -1:
		return 0, ErrPolarDay
	case ratio > 1:
		return 0, ErrPolarNight
	}

	return ha, nil
}

// Altitude returns the Sun's altitude (degrees) at the hour angle returned by
// HourAngle, so by construction it sits near StandardAltitude. It returns the
// same errors as HourAngle.
func (o Observation) Altitude() (float64, error) {
	ha, err := o.HourAngle()
	if err != nil {
		return 0, err
	}

	return sun.Altitude(o.lat, o.ApparentPosition().Dec, ha), nil
}

// -----------------------------
// Horizontal coordinates
// -----------------------------

// Horizontal returns the Sun's altitude and azimuth at the observation
// instant, from the apparent position and the local hour angle
// GST + longitude - RA.
func (o Observation) Horizontal() Horizontal {
	eq := o.ApparentPosition()
	h := sun.HorizontalAt(o.lat, o.lon, eq.RA, eq.Dec, o.julianDay)

	return Horizontal{Altitude: h.Altitude, Azimuth: h.Azimuth, HourAngle: h.HourAngle}
}

// TrackPoint is one sample of a Track.
type TrackPoint struct {
	Time      time.Time `json:"time"`
	JulianDay float64   `json:"julian_day"`
	Altitude  float64   `json:"altitude"`
	Azimuth   float64   `json:"azimuth"`
}

// Track samples the Sun's horizontal coordinates at the observation's
// location on an even grid of points+1 instants from start to end
// inclusive, each rounded to the second. It returns nil when points < 1 or
// end is before start.
func (o Observation) Track(start, end time.Time, points int) []TrackPoint {
	if points < 1 || end.Before(start) {
		return nil
	}

	first := FromTime(start).WithLocation(o.lat, o.lon)
	last := FromTime(end)
	step := (last.julianDay - first.julianDay) / float64(points)

	track := make([]TrackPoint, 0, points+1)
	for i := 0; i <= points; i++ {
		at := timeutil.JDToTime(first.julianDay + step*float64(i))

		p := FromTime(at).WithLocation(o.lat, o.lon)
		h := p.Horizontal()
		track = append(track, TrackPoint{
			Time:      at,
			JulianDay: p.julianDay,
			Altitude:  h.Altitude,
			Azimuth:   h.Azimuth,
		})
	}
	return track
}
