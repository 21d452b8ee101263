package finance

import (
	"math"
	"testing"
)

// within reports whether got is within relTol (relative) of want.
// For want == 0 it falls back to an absolute comparison.
func within(got, want, relTol float64) bool {
	if want == 0 {
		return math.Abs(got) <= relTol
	}
	return math.Abs(got-want)/math.Abs(want) <= relTol
}

func TestFutureValue(t *testing.T) {
	t.Run("zero rate leaves value unchanged", func(t *testing.T) {
		if got := FutureValue(100, 0, 5); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("zero years leaves value unchanged", func(t *testing.T) {
		if got := FutureValue(100, 0.05, 0); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("compounds annually", func(t *testing.T) {
		got := FutureValue(1000, 0.10, 2)
		if !within(got, 1210, 1e-12) {
			t.Errorf("expected 1210, got %v", got)
		}
	})

	t.Run("negative rate deflates", func(t *testing.T) {
		got := FutureValue(1000, -0.10, 1)
		if !within(got, 900, 1e-12) {
			t.Errorf("expected 900, got %v", got)
		}
	})
}

func TestLumpSumRequired(t *testing.T) {
	t.Run("zero years returns future value unchanged", func(t *testing.T) {
		if got := LumpSumRequired(5000, 0.12, 0); got != 5000 {
			t.Errorf("expected 5000, got %v", got)
		}
	})

	t.Run("zero rate returns future value unchanged", func(t *testing.T) {
		if got := LumpSumRequired(5000, 0, 10); got != 5000 {
			t.Errorf("expected 5000, got %v", got)
		}
	})

	t.Run("negative rate returns future value unchanged", func(t *testing.T) {
		if got := LumpSumRequired(5000, -0.02, 10); got != 5000 {
			t.Errorf("expected 5000, got %v", got)
		}
	})

	t.Run("round-trips through FutureValue", func(t *testing.T) {
		for _, tc := range []struct {
			pv    float64
			rate  float64
			years int
		}{
			{1000, 0.05, 1},
			{250000, 0.12, 7},
			{1, 0.08, 30},
		} {
			fv := FutureValue(tc.pv, tc.rate, tc.years)
			got := LumpSumRequired(fv, tc.rate, tc.years)
			if !within(got, tc.pv, 1e-9) {
				t.Errorf("LumpSumRequired(FutureValue(%v, %v, %d)) = %v, want %v",
					tc.pv, tc.rate, tc.years, got, tc.pv)
			}
		}
	})
}

func TestMonthlyRate(t *testing.T) {
	t.Run("compounding twelve months equals the annual rate", func(t *testing.T) {
		for _, annual := range []float64{0.04, 0.12, 0.20} {
			mr := MonthlyRate(annual)
			got := math.Pow(1+mr, 12) - 1
			if !within(got, annual, 1e-12) {
				t.Errorf("(1+MonthlyRate(%v))^12-1 = %v, want %v", annual, got, annual)
			}
		}
	})

	t.Run("zero annual rate gives zero monthly rate", func(t *testing.T) {
		if got := MonthlyRate(0); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestMonthlyContributionRequired(t *testing.T) {
	t.Run("positive for positive inputs", func(t *testing.T) {
		got := MonthlyContributionRequired(100000, 0.12, 5)
		if got <= 0 {
			t.Errorf("expected positive contribution, got %v", got)
		}
	})

	t.Run("zero years returns future value", func(t *testing.T) {
		if got := MonthlyContributionRequired(100000, 0.12, 0); got != 100000 {
			t.Errorf("expected 100000, got %v", got)
		}
	})

	t.Run("zero rate splits evenly over months", func(t *testing.T) {
		got := MonthlyContributionRequired(120000, 0, 5)
		if !within(got, 2000, 1e-12) {
			t.Errorf("expected 2000, got %v", got)
		}
	})

	t.Run("negative rate splits evenly over months", func(t *testing.T) {
		got := MonthlyContributionRequired(120000, -0.03, 10)
		if !within(got, 1000, 1e-12) {
			t.Errorf("expected 1000, got %v", got)
		}
	})

	t.Run("contributions grown by GrowthCurve reach the target", func(t *testing.T) {
		for _, tc := range []struct {
			target float64
			rate   float64
			years  int
		}{
			{100000, 0.08, 3},
			{1276281.5625, 0.12, 5},
			{5000000, 0.15, 20},
		} {
			pmt := MonthlyContributionRequired(tc.target, tc.rate, tc.years)
			curve := GrowthCurve(0, pmt, tc.rate, tc.years)
			final := curve[len(curve)-1]
			if !within(final, tc.target, 1e-9) {
				t.Errorf("growing %v/month at %v for %dy = %v, want %v",
					pmt, tc.rate, tc.years, final, tc.target)
			}
		}
	})
}

func TestGrowthCurve(t *testing.T) {
	t.Run("has years+1 entries starting at the initial balance", func(t *testing.T) {
		curve := GrowthCurve(1000, 100, 0.10, 5)
		if len(curve) != 6 {
			t.Fatalf("expected 6 entries, got %d", len(curve))
		}
		if curve[0] != 1000 {
			t.Errorf("expected initial balance 1000, got %v", curve[0])
		}
	})

	t.Run("zero years yields only the initial balance", func(t *testing.T) {
		curve := GrowthCurve(1000, 100, 0.10, 0)
		if len(curve) != 1 || curve[0] != 1000 {
			t.Errorf("expected [1000], got %v", curve)
		}
	})

	t.Run("balances grow with positive rate and contributions", func(t *testing.T) {
		curve := GrowthCurve(1000, 100, 0.10, 10)
		for i := 1; i < len(curve); i++ {
			if curve[i] <= curve[i-1] {
				t.Errorf("balance at year %d (%v) not above year %d (%v)", i, curve[i], i-1, curve[i-1])
			}
		}
	})

	t.Run("without contributions matches FutureValue", func(t *testing.T) {
		curve := GrowthCurve(10000, 0, 0.12, 8)
		want := FutureValue(10000, 0.12, 8)
		if !within(curve[len(curve)-1], want, 1e-9) {
			t.Errorf("expected %v, got %v", want, curve[len(curve)-1])
		}
	})
}

func TestROI(t *testing.T) {
	t.Run("zero invested returns zero", func(t *testing.T) {
		if got := ROI(0, 123456); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("gain", func(t *testing.T) {
		if got := ROI(1000, 1500); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("loss", func(t *testing.T) {
		if got := ROI(1000, 750); got != -25 {
			t.Errorf("expected -25, got %v", got)
		}
	})
}

// Planning a 1,000,000 goal at 5% inflation over 5 years with a 12%
// expected return, end to end through the engine.
func TestGoalScenario(t *testing.T) {
	fv := FutureValue(1000000, 0.05, 5)
	if !within(fv, 1276281.5625, 1e-4) {
		t.Errorf("future value = %v, want 1276281.5625", fv)
	}

	lump := LumpSumRequired(fv, 0.12, 5)
	if !within(lump, 724196.44, 1e-4) {
		t.Errorf("lump sum = %v, want ~724196.44", lump)
	}
	if !within(FutureValue(lump, 0.12, 5), fv, 1e-9) {
		t.Errorf("lump sum %v does not grow back to %v", lump, fv)
	}

	monthly := MonthlyContributionRequired(fv, 0.12, 5)
	if !within(monthly, 15885.65, 1e-4) {
		t.Errorf("monthly contribution = %v, want ~15885.65", monthly)
	}
	curve := GrowthCurve(0, monthly, 0.12, 5)
	if !within(curve[len(curve)-1], fv, 1e-9) {
		t.Errorf("monthly path lands at %v, want %v", curve[len(curve)-1], fv)
	}
}
