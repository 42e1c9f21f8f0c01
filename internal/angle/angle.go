// Package angle parses and formats geographic and equatorial angles.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

var (
	// ErrInvalidAngle is returned when a string is neither decimal degrees
	// nor degrees/minutes/seconds.
	ErrInvalidAngle = errors.New("invalid angle")

	// ErrOutOfRange is returned when a parsed angle falls outside the
	// allowed range.
	ErrOutOfRange = errors.New("angle out of range")
)

// ParseLatitude parses a latitude in [-90, 90].
func ParseLatitude(s string) (float64, error) {
	return ParseDegrees(s, -90, 90)
}

// ParseLongitude parses a longitude in [-180, 180], east positive.
func ParseLongitude(s string) (float64, error) {
	return ParseDegrees(s, -180, 180)
}

// ParseDegrees parses s as decimal degrees ("-74.006") or as degrees,
// minutes and seconds ("74d0m21.6sW", `40°42'46"N`). A trailing S or W
// makes the value negative; it cannot be combined with a leading minus.
// The result must lie in [min, max].
func ParseDegrees(s string, min, max float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAngle)
	}

	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		deg, err = parseDMS(s)
		if err != nil {
			return 0, err
		}
	}

	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
	}
	if deg < min || deg > max {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, deg, min, max)
	}
	return deg, nil
}

// parseDMS accepts lowercase unit markers d, m and s (or °, ′, ″, ', ")
// and either a leading minus or a hemisphere suffix N, S, E or W, never
// both. A lowercase trailing 's' is the seconds marker, not south.
func parseDMS(s string) (float64, error) {
	in := s

	sign := 1.0
	hemisphere := true
	switch s[len(s)-1] {
	case 'S', 'W', 'w':
		sign = -1
	case 'N', 'E', 'n', 'e':
	default:
		hemisphere = false
	}
	if hemisphere {
		s = strings.TrimSpace(s[:len(s)-1])
	}

	if strings.HasPrefix(s, "-") {
		if hemisphere {
			return 0, fmt.Errorf("%w: %q has both a sign and a hemisphere", ErrInvalidAngle, in)
		}
		sign = -1
		s = s[1:]
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case 'd', 'm', 's', '°', '\'', '"', '′', '″', ' ':
			return true
		}
		return false
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, in)
	}

	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, in)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, in)
		}
		parts[i] = v
	}

	return sign * (parts[0] + parts[1]/60 + parts[2]/3600), nil
}

// FormatDMS formats a latitude (isLatitude) or longitude as
// degrees, minutes and seconds with a hemisphere letter, e.g. 40° 42' 46.1" N.
func FormatDMS(deg float64, isLatitude bool) string {
	var dir string
	switch {
	case isLatitude && deg >= 0:
		dir = "N"
	case isLatitude:
		dir = "S"
	case deg >= 0:
		dir = "E"
	default:
		dir = "W"
	}

	// Work in tenths of an arcsecond so rounding never yields 60.0".
	tenths := int64(math.Round(math.Abs(deg) * 36000))
	d := tenths / 36000
	m := tenths % 36000 / 600
	s := float64(tenths%600) / 10

	return fmt.Sprintf("%d° %d' %.1f\" %s", d, m, s, dir)
}

// FormatRA formats a right ascension given in degrees as hours, minutes and
// seconds with prec decimals of seconds.
func FormatRA(deg float64, prec int) string {
	return fmt.Sprintf("%.*s", prec, sexa.FmtRA(unit.RAFromDeg(deg)))
}

// FormatDec formats a declination given in degrees as degrees,
// minutes and seconds with prec decimals of seconds.
func FormatDec(deg float64, prec int) string {
	return fmt.Sprintf("%.*s", prec, sexa.FmtAngle(unit.AngleFromDeg(deg)))
}
