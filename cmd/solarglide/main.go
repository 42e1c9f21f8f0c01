package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/thurmanmarka/solarglide"
	"github.com/thurmanmarka/solarglide/internal/angle"
	"github.com/thurmanmarka/solarglide/internal/config"
	"github.com/thurmanmarka/solarglide/internal/log"
)

func main() {
	debug := os.Getenv("SOLARGLIDE_DEBUG") != ""
	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// - If no args or first arg starts with "-", run position mode.
	// - Otherwise treat the first arg as a subcommand (e.g. "batch").
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runPosition(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "batch":
		runBatch(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `solarglide – apparent solar position

Usage:
  solarglide [flags]           # Sun position for one date and place
  solarglide batch [flags]     # evaluate a YAML observation request

Default mode flags:
  -lat string
        latitude, decimal degrees or DMS (e.g. 40d42m46sN)
  -lon string
        longitude, decimal degrees or DMS, east positive (e.g. 74d0m21.6sW)
  -time string
        UTC time in RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD' (defaults to now)
  -json
        output result as JSON

For batch mode:
  solarglide batch -h
`)
}

// ---------------------
// Position (default) mode
// ---------------------

func runPosition(args []string) {
	fs := flag.NewFlagSet("solarglide", flag.ExitOnError)

	latS := fs.String("lat", "0", "latitude, decimal degrees or DMS (north positive)")
	lonS := fs.String("lon", "0", "longitude, decimal degrees or DMS (east positive, west negative)")
	timeS := fs.String("time", "", "UTC time in RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD' (defaults to now)")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: solarglide [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	lat, err := angle.ParseLatitude(*latS)
	if err != nil {
		log.Fatalf("invalid -lat %q: %v", *latS, err)
	}
	lon, err := angle.ParseLongitude(*lonS)
	if err != nil {
		log.Fatalf("invalid -lon %q: %v", *lonS, err)
	}

	if lat == 0 && lon == 0 {
		log.Warnw("lat=0 lon=0 (Gulf of Guinea); use -lat and -lon to set a real location")
	}

	t, err := parseTime(*timeS)
	if err != nil {
		log.Fatalf("invalid -time %q: %v", *timeS, err)
	}

	obs := solarglide.FromTime(t).WithLocation(lat, lon)
	log.Debugw("evaluating observation", "time", t, "lat", lat, "lon", lon, "jd", obs.JulianDay())

	report := obs.Report()
	if *jsonOut {
		printJSON([]solarglide.Report{report})
	} else {
		printHuman(report)
	}
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var parseErr error
	for _, layout := range layouts {
		var t time.Time
		t, parseErr = time.ParseInLocation(layout, s, time.UTC)
		if parseErr == nil {
			return t, nil
		}
	}
	return time.Time{}, parseErr
}

// ---------------------
// Batch subcommand
// ---------------------

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)

	configFile := fs.String("config", "solarglide.yaml", "path to YAML observation request")
	workers := fs.Int("workers", 0, "concurrent evaluations (overrides the config file; 0 = config or CPU count)")
	jsonOut := fs.Bool("json", false, "output results as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: solarglide batch [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := config.Open(*configFile)
	if err != nil {
		log.Fatalf("load config %s: %v", *configFile, err)
	}

	obs, err := cfg.Observations()
	if err != nil {
		log.Fatalf("build observations: %v", err)
	}

	n := cfg.Workers
	if *workers > 0 {
		n = *workers
	}

	log.Infow("evaluating observation request",
		"observer", cfg.Observer.Name,
		"lat", float64(cfg.Observer.Latitude),
		"lon", float64(cfg.Observer.Longitude),
		"elevation", cfg.Observer.Elevation,
		"times", len(obs),
		"workers", n,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := solarglide.EvaluateAll(ctx, obs, n)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warnw("batch interrupted")
			return
		}
		log.Fatalf("evaluate: %v", err)
	}

	for _, r := range reports {
		if r.Condition != solarglide.ConditionNormal {
			log.Infow("no horizon crossing", "time", r.Time, "condition", string(r.Condition))
		}
	}

	if *jsonOut {
		printJSON(reports)
		return
	}

	fmt.Printf("Observer: %s (elevation %.0f m)\n\n", cfg.Observer.Name, cfg.Observer.Elevation)
	for i, r := range reports {
		if i > 0 {
			fmt.Println()
		}
		printHuman(r)
	}
}

// ---------------------
// Shared helpers
// ---------------------

func printHuman(r solarglide.Report) {
	fmt.Printf("Sun position for %s %s\n", angle.FormatDMS(r.Latitude, true), angle.FormatDMS(r.Longitude, false))
	fmt.Printf("Time: %s (JD %.5f, T %.9f)\n\n", r.Time.Format(time.RFC3339), r.JulianDay, r.JulianCentury)

	fmt.Printf("  Mean longitude     : %10.5f°\n", r.MeanLongitude)
	fmt.Printf("  Mean anomaly       : %10.5f°\n", r.MeanAnomaly)
	fmt.Printf("  Eccentricity       : %12.9f\n", r.EarthOrbitEccentricity)
	fmt.Printf("  Equation of center : %10.5f°\n", r.EquationOfCenter)
	fmt.Printf("  True longitude     : %10.5f°\n", r.TrueLongitude)
	fmt.Printf("  Radius vector      : %10.5f AU\n", r.RadiusVector)
	fmt.Printf("  Apparent longitude : %10.5f°\n", r.ApparentLongitude)
	fmt.Printf("  Mean obliquity     : %10.5f°\n", r.EclipticMeanObliquity)
	fmt.Printf("  Right ascension    : %10.5f° (%s)\n", r.RightAscension, angle.FormatRA(r.RightAscension, 1))
	fmt.Printf("  Declination        : %10.5f° (%s)\n", r.Declination, angle.FormatDec(r.Declination, 1))
	fmt.Printf("  Transit            : %s\n", r.TransitTime.Format(time.RFC3339))
	fmt.Printf("  Local hour angle   : %10.5f°\n", r.LocalHourAngle)
	fmt.Printf("  Sun altitude       : %10.5f°\n", r.SolarAltitude)
	fmt.Printf("  Sun azimuth        : %10.5f°\n", r.SolarAzimuth)

	switch r.Condition {
	case solarglide.ConditionPolarDay:
		fmt.Printf("  Horizon hour angle : Sun never sets\n")
	case solarglide.ConditionPolarNight:
		fmt.Printf("  Horizon hour angle : Sun never rises\n")
	default:
		fmt.Printf("  Horizon hour angle : %10.5f°\n", *r.HourAngle)
		fmt.Printf("  Horizon altitude   : %10.5f°\n", *r.Altitude)
	}
}

func printJSON(reports []solarglide.Report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	var v interface{} = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
