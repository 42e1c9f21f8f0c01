package solarglide

import (
	"errors"
	"time"
)

// Condition describes whether the Sun crosses the standard altitude on an
// observation's date.
type Condition string

const (
	// ConditionNormal means the Sun both rises and sets.
	ConditionNormal Condition = ""
	// ConditionPolarDay means the Sun never sets (see ErrPolarDay).
	ConditionPolarDay Condition = "polar day"
	// ConditionPolarNight means the Sun never rises (see ErrPolarNight).
	ConditionPolarNight Condition = "polar night"
)

// ConditionOf maps an error from HourAngle or Altitude to a Condition.
// It returns false for errors that are not polar conditions.
func ConditionOf(err error) (Condition, bool) {
	switch {
	case err == nil:
		return ConditionNormal, true
	case errors.Is(err, ErrPolarDay):
		return ConditionPolarDay, true
	case errors.Is(err, ErrPolarNight):
		return ConditionPolarNight, true
	default:
		return ConditionNormal, false
	}
}

// Report is a snapshot of every quantity derived for one Observation.
// HourAngle and Altitude are nil when Condition is not ConditionNormal.
type Report struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	JulianDay        float64 `json:"julian_day"`
	JulianCentury    float64 `json:"julian_century"`
	CurrentJulianDay float64 `json:"current_julian_day"`

	MeanLongitude          float64 `json:"mean_longitude"`
	MeanAnomaly            float64 `json:"mean_anomaly"`
	EarthOrbitEccentricity float64 `json:"earth_orbit_eccentricity"`
	EquationOfCenter       float64 `json:"equation_of_center"`
	TrueLongitude          float64 `json:"true_longitude"`
	TrueAnomaly            float64 `json:"true_anomaly"`
	RadiusVector           float64 `json:"radius_vector"`
	ApparentLongitude      float64 `json:"apparent_longitude"`
	EclipticMeanObliquity  float64 `json:"ecliptic_mean_obliquity"`

	RightAscension float64 `json:"right_ascension"`
	Declination    float64 `json:"declination"`

	MeanSolarTime             float64   `json:"mean_solar_time"`
	Transit                   float64   `json:"transit"`
	TransitTime               time.Time `json:"transit_time"`
	GreenwichMeanSiderealTime float64   `json:"greenwich_mean_sidereal_time"`
	LocalMeanSiderealTime     float64   `json:"local_mean_sidereal_time"`
	HourAngleZero             float64   `json:"hour_angle_zero"`

	// Where the Sun is in the sky at Time.
	SolarAltitude  float64 `json:"solar_altitude"`
	SolarAzimuth   float64 `json:"solar_azimuth"`
	LocalHourAngle float64 `json:"local_hour_angle"`

	// Horizon crossing for the date at StandardAltitude.
	HourAngle *float64  `json:"hour_angle,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Condition Condition `json:"condition,omitempty"`
}

// Report evaluates every formula for o. Polar conditions are recorded in the
// returned Report rather than returned as errors.
func (o Observation) Report() Report {
	eq := o.ApparentPosition()
	sky := o.Horizontal()

	r := Report{
		Time:      o.Time(),
		Latitude:  o.lat,
		Longitude: o.lon,

		JulianDay:        o.julianDay,
		JulianCentury:    o.julianCentury,
		CurrentJulianDay: o.CurrentJulianDay(),

		MeanLongitude:          o.MeanLongitude(),
		MeanAnomaly:            o.MeanAnomaly(),
		EarthOrbitEccentricity: o.EarthOrbitEccentricity(),
		EquationOfCenter:       o.EquationOfCenter(),
		TrueLongitude:          o.TrueLongitude(),
		TrueAnomaly:            o.TrueAnomaly(),
		RadiusVector:           o.RadiusVector(),
		ApparentLongitude:      o.ApparentLongitude(),
		EclipticMeanObliquity:  o.EclipticMeanObliquity(),

		RightAscension: eq.RA,
		Declination:    eq.Dec,

		MeanSolarTime:             o.MeanSolarTime(),
		Transit:                   o.Transit(),
		TransitTime:               o.TransitTime(),
		GreenwichMeanSiderealTime: o.GreenwichMeanSiderealTime(),
		LocalMeanSiderealTime:     o.LocalMeanSiderealTime(),
		HourAngleZero:             o.HourAngleZero(),

		SolarAltitude:  sky.Altitude,
		SolarAzimuth:   sky.Azimuth,
		LocalHourAngle: sky.HourAngle,
	}

	ha, err := o.HourAngle()
	if err != nil {
		r.Condition, _ = ConditionOf(err)
		return r
	}

	alt, err := o.Altitude()
	if err != nil {
		r.Condition, _ = ConditionOf(err)
		return r
	}

	r.HourAngle = &ha
	r.Altitude = &alt
	return r
}
