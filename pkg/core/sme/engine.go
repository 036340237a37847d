// Package sme simulates small-business financing outcomes under conventional
// debt versus profit-sharing finance with a per-firm Monte Carlo model.
package sme

import (
	"math"

	"fincompare/pkg/core/calibration"
	"fincompare/pkg/core/mathx"
)

// Runs is the number of independent trajectories simulated per financing mode.
const Runs = 350

// Payout and distress constants of the per-path model.
const (
	profitShareRate     = 0.30 // paid on positive profit only
	severeDropThreshold = 0.40 // fraction of baseline profit flagged as a severe income drop
	idiosyncraticNoise  = 0.05 // extra profit noise, as a fraction of revenue
)

// Stability labels derived from profit-share survival.
const (
	StabilityHigh   = "High"
	StabilityMedium = "Medium"
	StabilityLow    = "Low"
	StabilityNA     = "N/A"
)

// Inputs are the raw UI-supplied fields.
type Inputs struct {
	Revenue         float64 `json:"revenue"`
	MarginPct       float64 `json:"margin_pct"`
	FinanceRequired float64 `json:"finance_required"`
	TermYears       int     `json:"term_years"`
	SectorID        string  `json:"sector_id"`
}

// YearPoint is one annual sample of the mean owner-income path.
type YearPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// ModeResult aggregates all runs for one financing mode.
type ModeResult struct {
	SurvivalPct    float64     `json:"survival_pct"`
	SevereShockPct float64     `json:"severe_shock_pct"`
	MeanIncome     []YearPoint `json:"mean_income"`
}

// Result is the full SME comparison.
type Result struct {
	Runs           int        `json:"runs"`
	Years          int        `json:"years"`
	Debt           ModeResult `json:"debt"`
	ProfitShare    ModeResult `json:"profit_share"`
	StabilityLabel string     `json:"stability_label"`
}

// Resolved carries the effective per-path parameters after sector and
// calibration defaults are applied.
type Resolved struct {
	Revenue        float64
	Margin         float64
	Finance        float64
	Years          int
	Growth         float64
	Volatility     float64
	RecessionShock float64
	LoanRate       float64
}

// Resolve applies defaults: an explicit positive margin wins, then the sector
// profile, then the calibration default margin. Volatility and recession
// shock come from the sector when one is selected. Revenue, finance and term
// deliberately do not fall back: a zero there short-circuits the simulation.
func Resolve(in Inputs, calib calibration.Profile, sector *calibration.SectorProfile) Resolved {
	s := calib.SME

	margin := in.MarginPct / 100
	if in.MarginPct <= 0 {
		if sector != nil {
			margin = sector.BaseMargin
		} else {
			margin = s.DefaultMargin
		}
	}

	vol := s.RevenueVolatility
	shock := s.RecessionShock
	if sector != nil {
		vol = sector.RevenueVolatility
		shock = sector.RecessionShock
	}

	return Resolved{
		Revenue:        in.Revenue,
		Margin:         margin,
		Finance:        in.FinanceRequired,
		Years:          in.TermYears,
		Growth:         s.RevenueGrowth,
		Volatility:     vol,
		RecessionShock: shock,
		LoanRate:       s.LoanRate,
	}
}

// Degenerate reports whether the resolved inputs cannot be simulated.
func (r Resolved) Degenerate() bool {
	return r.Revenue <= 0 || r.Finance <= 0 || r.Years <= 0
}

// Simulate runs the Monte Carlo comparison. Degenerate inputs return
// Runs = 0 with an "N/A" stability label and no trajectories. The normal
// source is injected so runs are reproducible under a fixed seed.
func Simulate(in Inputs, calib calibration.Profile, scen calibration.Scenario, sector *calibration.SectorProfile, src mathx.NormalSource) Result {
	res := Resolve(in, calib, sector)
	if res.Degenerate() {
		return Result{StabilityLabel: StabilityNA}
	}

	debt := runMode(res, scen, true, src)
	ps := runMode(res, scen, false, src)

	label := StabilityLow
	switch {
	case ps.SurvivalPct >= 90:
		label = StabilityHigh
	case ps.SurvivalPct >= 75:
		label = StabilityMedium
	}

	return Result{
		Runs:           Runs,
		Years:          res.Years,
		Debt:           debt,
		ProfitShare:    ps,
		StabilityLabel: label,
	}
}

// runMode simulates Runs independent paths for one financing mode and
// aggregates them.
func runMode(res Resolved, scen calibration.Scenario, debtMode bool, src mathx.NormalSource) ModeResult {
	years := res.Years
	midpoint := int(math.Round(float64(years) / 2))
	baseline := res.Revenue * res.Margin
	annuity := annualPayment(res.Finance, res.LoanRate, years)

	incomeSum := make([]float64, years)
	var survived, severe int

	for run := 0; run < Runs; run++ {
		equity := res.Finance
		defaulted := false
		severeHit := false

		for t := 1; t <= years; t++ {
			baseRev := res.Revenue * math.Pow(1+res.Growth, float64(t-1))
			rev := baseRev * (1 + res.Volatility*src.Norm())
			if t == midpoint {
				rev *= 1 + res.RecessionShock*scen.RecessionShockFactor
			}

			profit := rev*res.Margin + idiosyncraticNoise*rev*src.Norm()

			var payment float64
			if debtMode {
				payment = annuity
			} else if profit > 0 {
				payment = profitShareRate * profit
			}

			income := math.Max(profit-payment, 0)
			if !severeHit && income < severeDropThreshold*baseline {
				severeHit = true
			}
			incomeSum[t-1] += income

			equity += profit - payment
			if equity < 0 {
				defaulted = true
				break
			}
		}

		if !defaulted {
			survived++
		}
		if severeHit {
			severe++
		}
	}

	mean := make([]YearPoint, years)
	for i := range mean {
		mean[i] = YearPoint{Year: i + 1, Value: incomeSum[i] / Runs}
	}

	return ModeResult{
		SurvivalPct:    100 * float64(survived) / Runs,
		SevereShockPct: 100 * float64(severe) / Runs,
		MeanIncome:     mean,
	}
}

// annualPayment is the fixed yearly annuity on principal p at rate r over n
// years.
func annualPayment(p, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return p / float64(n)
	}
	return p * r / (1 - math.Pow(1+r, -float64(n)))
}
