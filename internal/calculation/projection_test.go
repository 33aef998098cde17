package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProjectAnnualZeroRateIsLinear(t *testing.T) {
	// With no growth the trajectory is pure accumulation: v0 + 12c per year.
	v0 := decimal.NewFromInt(1000)
	c := decimal.NewFromInt(100)

	trajectory := ProjectAnnual(v0, c, decimal.Zero, 5)
	if len(trajectory) != 6 {
		t.Fatalf("expected 6 points, got %d", len(trajectory))
	}
	for y, got := range trajectory {
		want := decimal.NewFromInt(1000 + 100*12*int64(y+1))
		if !got.Equal(want) {
			t.Fatalf("point %d = %s, want %s", y, got, want)
		}
	}
}

func TestProjectAnnualNegativeHorizon(t *testing.T) {
	trajectory := ProjectAnnual(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.03), -1)
	if len(trajectory) != 0 {
		t.Fatalf("expected empty trajectory, got %d points", len(trajectory))
	}
	if ReachesTarget(trajectory, decimal.Zero) {
		t.Fatal("an empty trajectory must never reach a target")
	}
}

func TestProjectAnnualFirstPointFractionalCredits(t *testing.T) {
	// project(0, 500, 0.03, 1): two points; point 0 is the sum of twelve
	// contributions each compounded for the remaining fraction of the year:
	// 500 * sum_{m=0..11} 1.03^((11-m)/12).
	trajectory := ProjectAnnual(decimal.Zero, decimal.NewFromInt(500), decimal.NewFromFloat(0.03), 1)
	if len(trajectory) != 2 {
		t.Fatalf("expected 2 points, got %d", len(trajectory))
	}

	want := 0.0
	for m := 0; m < 12; m++ {
		want += 500 * math.Pow(1.03, float64(11-m)/12)
	}
	if got := trajectory[0].InexactFloat64(); math.Abs(got-want) > 0.01 {
		t.Fatalf("point 0 = %.4f, want %.4f", got, want)
	}

	// Point 1 compounds point 0 for a full year before the next twelve
	// contributions accrue.
	wantYear1 := want*1.03 + want
	if got := trajectory[1].InexactFloat64(); math.Abs(got-wantYear1) > 0.01 {
		t.Fatalf("point 1 = %.4f, want %.4f", got, wantYear1)
	}
}

func TestProjectAnnualMonotonicForNonNegativeRate(t *testing.T) {
	trajectory := ProjectAnnual(decimal.NewFromInt(10000), decimal.NewFromInt(250), decimal.NewFromFloat(0.05), 40)
	for i := 1; i < len(trajectory); i++ {
		if trajectory[i].LessThan(trajectory[i-1]) {
			t.Fatalf("trajectory decreased at year %d: %s -> %s", i, trajectory[i-1], trajectory[i])
		}
	}
}

func TestProjectAnnualVeryNegativeRateCanDecline(t *testing.T) {
	trajectory := ProjectAnnual(decimal.NewFromInt(100000), decimal.Zero, decimal.NewFromFloat(-0.10), 10)
	if len(trajectory) != 11 {
		t.Fatalf("expected 11 points, got %d", len(trajectory))
	}
	if !trajectory[10].LessThan(trajectory[0]) {
		t.Fatal("a strongly negative rate with no contributions should erode the balance")
	}
}

func TestReachesTarget(t *testing.T) {
	trajectory := ProjectAnnual(decimal.NewFromInt(500000), decimal.NewFromInt(1000), decimal.NewFromFloat(0.03), 10)
	if !ReachesTarget(trajectory, decimal.NewFromInt(600000)) {
		t.Fatal("expected the target to be reached")
	}
	if ReachesTarget(trajectory, decimal.NewFromInt(100000000)) {
		t.Fatal("did not expect an unreachable target to be reached")
	}
}

func TestFirstCrossing(t *testing.T) {
	trajectory := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(200),
		decimal.NewFromInt(300),
	}
	idx, ok := FirstCrossing(trajectory, decimal.NewFromInt(200))
	if !ok || idx != 1 {
		t.Fatalf("expected crossing at index 1, got %d (ok=%t)", idx, ok)
	}
	if _, ok := FirstCrossing(trajectory, decimal.NewFromInt(301)); ok {
		t.Fatal("expected no crossing above the last point")
	}
}

func TestProjectMonthlyGeometricRate(t *testing.T) {
	// One month at 3% annual: value = v*(1.03^(1/12)) + c, not v*(1+0.03/12)+c.
	proj := ProjectMonthly(decimal.NewFromInt(12000), decimal.NewFromInt(100), decimal.NewFromFloat(0.03), decimal.NewFromInt(1000000), 1)
	want := 12000*math.Pow(1.03, 1.0/12) + 100
	if got := proj.FIREValues[0].InexactFloat64(); math.Abs(got-want) > 0.001 {
		t.Fatalf("first month = %.6f, want %.6f", got, want)
	}
	if got := proj.CoastValues[0].InexactFloat64(); math.Abs(got-12000*math.Pow(1.03, 1.0/12)) > 0.001 {
		t.Fatalf("coast series must compound without contributions, got %.6f", got)
	}
}

func TestProjectMonthlyEarlyExit(t *testing.T) {
	// 100 contributed monthly at zero growth reaches 500 in 5 months; the
	// trajectories are truncated at the crossing, not run to the horizon.
	proj := ProjectMonthly(decimal.Zero, decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(500), 120)
	if !proj.Reached {
		t.Fatal("expected the target to be reached")
	}
	if proj.MonthsToTarget != 5 {
		t.Fatalf("expected 5 months to target, got %d", proj.MonthsToTarget)
	}
	if len(proj.FIREValues) != 5 || len(proj.CoastValues) != 5 {
		t.Fatalf("expected truncated trajectories of 5 points, got %d/%d", len(proj.FIREValues), len(proj.CoastValues))
	}

	years, ok := proj.YearsToTarget()
	if !ok {
		t.Fatal("expected YearsToTarget to report a crossing")
	}
	if math.Abs(years-5.0/12) > 1e-9 {
		t.Fatalf("years to target = %f, want %f", years, 5.0/12)
	}
}

func TestProjectMonthlyNeverReached(t *testing.T) {
	proj := ProjectMonthly(decimal.Zero, decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(1000000), 24)
	if proj.Reached {
		t.Fatal("target should not be reachable")
	}
	if len(proj.FIREValues) != 24 {
		t.Fatalf("expected a full-horizon trajectory, got %d points", len(proj.FIREValues))
	}
	if _, ok := proj.YearsToTarget(); ok {
		t.Fatal("YearsToTarget must report absence, not a zero sentinel")
	}
}

func TestProjectMonthlyZeroHorizon(t *testing.T) {
	proj := ProjectMonthly(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.05), decimal.NewFromInt(500), 0)
	if proj.Reached {
		t.Fatal("zero horizon must not report a crossing even when already at goal")
	}
	if len(proj.FIREValues) != 0 {
		t.Fatalf("expected no points, got %d", len(proj.FIREValues))
	}
}
