package solarglide_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thurmanmarka/solarglide"
)

// ExampleNewObservation reproduces the worked example for 1992 October 13.0 UT.
func ExampleNewObservation() {
	obs := solarglide.NewObservation(1992, 10, 13.0)
	eq := obs.ApparentPosition()

	fmt.Printf("RA:  %.4f°\n", eq.RA)
	fmt.Printf("Dec: %.4f°\n", eq.Dec)
	fmt.Printf("R:   %.5f AU\n", obs.RadiusVector())
	// Output:
	// RA:  198.3808°
	// Dec: -7.7851°
	// R:   0.99766 AU
}

// ExampleObservation_HourAngle shows the hour angle of sunset for New York
// City at the June solstice.
func ExampleObservation_HourAngle() {
	obs := solarglide.NewObservation(2024, 6, 21.0).WithLocation(40.7128, -74.0060)

	ha, err := obs.HourAngle()
	if err != nil {
		panic(err)
	}
	fmt.Printf("hour angle: %.2f°\n", ha)
	// Output:
	// hour angle: 113.20°
}

// ExampleObservation_HourAngle_polar shows how a latitude with no horizon
// crossing is reported.
func ExampleObservation_HourAngle_polar() {
	svalbard := solarglide.NewObservation(2024, 12, 21.0).WithLocation(78.2232, 15.6267)

	_, err := svalbard.HourAngle()
	switch {
	case errors.Is(err, solarglide.ErrPolarNight):
		fmt.Println("polar night")
	case errors.Is(err, solarglide.ErrPolarDay):
		fmt.Println("polar day")
	}
	// Output:
	// polar night
}

// ExampleEvaluateAll evaluates a week of local noons in Denver concurrently.
func ExampleEvaluateAll() {
	mst := time.FixedZone("MST", -7*3600)

	var obs []solarglide.Observation
	for d := 0; d < 7; d++ {
		noon := time.Date(2025, time.March, 17+d, 12, 0, 0, 0, mst)
		obs = append(obs, solarglide.FromTime(noon).WithLocation(39.7392, -104.9903))
	}

	reports, err := solarglide.EvaluateAll(context.Background(), obs, 4)
	if err != nil {
		panic(err)
	}

	for _, r := range reports {
		fmt.Printf("%s  dec=%+.3f°  transit=%s\n",
			r.Time.In(mst).Format("Jan 02"), r.Declination, r.TransitTime.In(mst).Format("15:04:05"))
	}
	// Output:
	// Mar 17  dec=-1.019°  transit=12:08:07
	// Mar 18  dec=-0.624°  transit=12:07:49
	// Mar 19  dec=-0.228°  transit=12:07:30
	// Mar 20  dec=+0.167°  transit=12:07:12
	// Mar 21  dec=+0.562°  transit=12:06:53
	// Mar 22  dec=+0.957°  transit=12:06:34
	// Mar 23  dec=+1.351°  transit=12:06:15
}
