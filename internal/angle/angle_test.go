package angle

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseDegrees(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-74.006", -74.006},
		{" 40.7128 ", 40.7128},
		{"40d42m46sN", 40 + 42.0/60 + 46.0/3600},
		{"74d0m21.6sW", -(74 + 21.6/3600)},
		{"74d0m21.6sw", -(74 + 21.6/3600)},
		{`40°42'46"N`, 40 + 42.0/60 + 46.0/3600},
		{`33°52′07.7″S`, -(33 + 52.0/60 + 7.7/3600)},
		{"151 12 33.5 E", 151 + 12.0/60 + 33.5/3600},
		{"-12d30m", -12.5},
		{"45d", 45},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDegrees(tt.in, -180, 180)
			if err != nil {
				t.Fatalf("ParseDegrees(%q) error = %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ParseDegrees(%q) = %.12f, want %.12f", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDegreesErrors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrInvalidAngle},
		{"   ", ErrInvalidAngle},
		{"north", ErrInvalidAngle},
		{"NaN", ErrInvalidAngle},
		{"+Inf", ErrInvalidAngle},
		{"40d75m", ErrInvalidAngle},
		{"40d10m60s", ErrInvalidAngle},
		{"1d2m3s4", ErrInvalidAngle},
		{"40d-5m", ErrInvalidAngle},
		{"-40d30mS", ErrInvalidAngle},
		{"-74d0m21.6sW", ErrInvalidAngle},
		{"-40.5 N", ErrInvalidAngle},
		{"40D42M46S", ErrInvalidAngle},
		{"40D42M", ErrInvalidAngle},
		{"S", ErrInvalidAngle},
		{"181", ErrOutOfRange},
		{"180d0m1sW", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDegrees(tt.in, -180, 180)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseDegrees(%q) = (%g, %v), want error %v", tt.in, got, err, tt.wantErr)
			}
		})
	}
}

func TestParseLatitudeLongitude(t *testing.T) {
	if _, err := ParseLatitude("90.5"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ParseLatitude(90.5) error = %v, want ErrOutOfRange", err)
	}
	if lat, err := ParseLatitude("78d13m23.5sN"); err != nil || math.Abs(lat-78.22319444) > 1e-8 {
		t.Errorf("ParseLatitude(78d13m23.5sN) = (%g, %v)", lat, err)
	}

	if _, err := ParseLongitude("-180.01"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ParseLongitude(-180.01) error = %v, want ErrOutOfRange", err)
	}
	if lon, err := ParseLongitude("105W"); err != nil || lon != -105 {
		t.Errorf("ParseLongitude(105W) = (%g, %v), want -105", lon, err)
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		deg        float64
		isLatitude bool
		want       string
	}{
		{40.7128, true, `40° 42' 46.1" N`},
		{-74.006, false, `74° 0' 21.6" W`},
		{-33.8688, true, `33° 52' 7.7" S`},
		{0, false, `0° 0' 0.0" E`},
		{12.99999999, true, `13° 0' 0.0" N`},
	}

	for _, tt := range tests {
		if got := FormatDMS(tt.deg, tt.isLatitude); got != tt.want {
			t.Errorf("FormatDMS(%g, %v) = %q, want %q", tt.deg, tt.isLatitude, got, tt.want)
		}
	}
}

func TestFormatDMSRoundTrip(t *testing.T) {
	for _, deg := range []float64{-89.5, -45.25, -0.5, 0.1, 33.3333, 78.2232} {
		back, err := ParseLatitude(FormatDMS(deg, true))
		if err != nil {
			t.Fatalf("ParseLatitude(FormatDMS(%g)) error = %v", deg, err)
		}
		if math.Abs(back-deg) > 0.05/3600 {
			t.Errorf("round trip of %g = %g", deg, back)
		}
	}
}

func TestFormatEquatorial(t *testing.T) {
	ra := FormatRA(198.3808, 1)
	for _, sym := range []string{"ʰ", "ᵐ"} {
		if !strings.Contains(ra, sym) {
			t.Errorf("FormatRA(198.3808) = %q, missing %q", ra, sym)
		}
	}
	if !strings.HasPrefix(ra, "13ʰ") {
		t.Errorf("FormatRA(198.3808) = %q, want 13ʰ...", ra)
	}

	dec := FormatDec(-7.7851, 1)
	if !strings.HasPrefix(dec, "-") || !strings.Contains(dec, "7°") {
		t.Errorf("FormatDec(-7.7851) = %q, want -7°...", dec)
	}
}
