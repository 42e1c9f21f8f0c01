package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/solarglide"
	"github.com/thurmanmarka/solarglide/internal/log"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *stats) print(title string) {
	fmt.Printf("\n%s:\n", title)
	fmt.Printf("  count: %d\n", s.count)
	fmt.Printf("  min:   %.3f\n", s.min)
	fmt.Printf("  max:   %.3f\n", s.max)
	fmt.Printf("  avg:   %.3f\n", s.avg())
}

// reference is one row of reference ephemeris: the instant and the apparent
// RA/Dec of the Sun in degrees.
type reference struct {
	label string
	t     time.Time
	ra    float64
	dec   float64
}

// diffArcsec returns a - b in arcseconds, with the difference wrapped into
// [-180°, 180°) so RA near 0h compares correctly.
func diffArcsec(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	return d * 3600
}

// CSV format:
//
// date,ra,dec
// 2025-01-01T00:00:00Z,281.0531,-23.0376
// 2025-01-02,282.1589,-22.9462
//
// - date is RFC3339 or YYYY-MM-DD (UTC midnight)
// - ra/dec are apparent geocentric coordinates in decimal degrees
//
// Without -refcsv the reference is solar.ApparentEquatorial from
// github.com/soniakeys/meeus, evaluated every -step days from -start to -end.
func main() {
	var (
		refCSV  = flag.String("refcsv", "", "path to reference ephemeris CSV file (date,ra,dec)")
		startS  = flag.String("start", "2025-01-01", "first date for the Meeus reference (YYYY-MM-DD)")
		endS    = flag.String("end", "2025-12-31", "last date for the Meeus reference (YYYY-MM-DD)")
		step    = flag.Float64("step", 1, "step in days for the Meeus reference")
		verbose = flag.Bool("verbose", false, "print per-row errors instead of only summary")
		outCSV  = flag.String("outcsv", "", "optional path to write per-row error CSV")
	)

	flag.Parse()

	if err := log.Init(false); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var (
		refs    []reference
		skipped int
		mode    string
		err     error
	)

	if *refCSV != "" {
		mode = "CSV " + *refCSV
		refs, skipped, err = readCSV(*refCSV)
	} else {
		mode = "MEEUS SOLAR THEORY"
		refs, err = meeusReferences(*startS, *endS, *step)
	}
	if err != nil {
		log.Fatalf("load references: %v", err)
	}

	var outWriter *csv.Writer

	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{"date", "ra_err_arcsec", "dec_err_arcsec"}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	var (
		raStats       stats
		decStats      stats
		raSignedStats stats
		decSigned     stats
	)

	for _, ref := range refs {
		eq := solarglide.FromTime(ref.t).ApparentPosition()

		raErr := diffArcsec(eq.RA, ref.ra)
		decErr := (eq.Dec - ref.dec) * 3600

		raStats.add(math.Abs(raErr))
		decStats.add(math.Abs(decErr))
		raSignedStats.add(raErr)
		decSigned.add(decErr)

		if *verbose {
			fmt.Printf("%s: ra err=%.2f\" (got=%.5f ref=%.5f), dec err=%.2f\" (got=%.5f ref=%.5f)\n",
				ref.label, raErr, eq.RA, ref.ra, decErr, eq.Dec, ref.dec)
		}

		if outWriter != nil {
			rec := []string{
				ref.label,
				fmt.Sprintf("%.6f", raErr),
				fmt.Sprintf("%.6f", decErr),
			}
			if err := outWriter.Write(rec); err != nil {
				log.Errorw("failed to write outcsv row", "date", ref.label, "error", err)
			}
		}
	}

	fmt.Println("=== solarglide profiler summary ===")
	fmt.Printf("Reference: %s\n", mode)
	fmt.Printf("Rows:      %d (processed), %d skipped\n", len(refs), skipped)

	if raStats.count == 0 {
		fmt.Println("No valid rows to compute stats.")
		return
	}

	raStats.print("RA error (arcsec)")
	decStats.print("Dec error (arcsec)")
	raSignedStats.print("RA signed error (arcsec, our - ref)")
	decSigned.print("Dec signed error (arcsec, our - ref)")
}

func readCSV(path string) ([]reference, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open refcsv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable, we validate

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file")
	}

	// If first row looks like a header, skip it.
	startIdx := 0
	if len(records[0]) >= 1 && strings.EqualFold(records[0][0], "date") {
		startIdx = 1
	}

	var (
		refs    []reference
		skipped int
	)
	for i := startIdx; i < len(records); i++ {
		row := records[i]
		if len(row) < 3 {
			log.Warnw("expected at least 3 columns (date,ra,dec), skipping", "row", i+1, "columns", len(row))
			skipped++
			continue
		}

		dateStr := strings.TrimSpace(row[0])
		t, err := parseDate(dateStr)
		if err != nil {
			log.Warnw("invalid date, skipping", "row", i+1, "date", dateStr, "error", err)
			skipped++
			continue
		}

		ra, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			log.Warnw("invalid ra, skipping", "row", i+1, "error", err)
			skipped++
			continue
		}
		dec, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			log.Warnw("invalid dec, skipping", "row", i+1, "error", err)
			skipped++
			continue
		}

		refs = append(refs, reference{label: dateStr, t: t, ra: ra, dec: dec})
	}

	return refs, skipped, nil
}

func meeusReferences(startS, endS string, step float64) ([]reference, error) {
	start, err := parseDate(startS)
	if err != nil {
		return nil, fmt.Errorf("invalid -start %q: %w", startS, err)
	}
	end, err := parseDate(endS)
	if err != nil {
		return nil, fmt.Errorf("invalid -end %q: %w", endS, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("-end %s is before -start %s", endS, startS)
	}

	stepDur, err := stepDuration(step)
	if err != nil {
		return nil, err
	}

	var refs []reference
	for t := start; !t.After(end); t = t.Add(stepDur) {
		jd := solarglide.FromTime(t).JulianDay()

		// ΔT is ignored: JD stands in for JDE on both sides.
		ra, dec := solar.ApparentEquatorial(jd)

		refs = append(refs, reference{
			label: t.Format(time.RFC3339),
			t:     t,
			ra:    unit.Angle(ra).Deg(),
			dec:   dec.Deg(),
		})
	}
	return refs, nil
}

// stepDuration converts a step in days to a time.Duration. Steps too small
// to survive the conversion to nanoseconds are rejected.
func stepDuration(days float64) (time.Duration, error) {
	if !(days > 0) || math.IsInf(days, 0) {
		return 0, fmt.Errorf("-step must be positive, got %g", days)
	}

	d := time.Duration(days * 24 * float64(time.Hour))
	if d < time.Second {
		return 0, fmt.Errorf("-step %g days is shorter than one second", days)
	}
	return d, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
